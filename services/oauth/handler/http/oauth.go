package http

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/services/oauth"
)

// OAuthHandler handles the provider redirect flow
type OAuthHandler struct {
	oauthUC oauth.OAuthUC
}

// NewOAuthHandler creates a new oauth handler
func NewOAuthHandler(oauthUC oauth.OAuthUC) *OAuthHandler {
	return &OAuthHandler{oauthUC: oauthUC}
}

// RegisterRoutes registers the oauth endpoints
func (h *OAuthHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/oauth")
	group.GET("/auth", h.Authorize)
	group.GET("/callback", h.Callback)
}

// Authorize redirects to the provider's authorize endpoint with signed state
func (h *OAuthHandler) Authorize(c echo.Context) error {
	url, err := h.oauthUC.AuthorizeURL(c.Request().Context())
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to build authorize URL", logger.Err(err))
		return c.HTML(http.StatusInternalServerError, errorPage)
	}

	return c.Redirect(http.StatusFound, url)
}

// Callback completes the flow. The result is relayed to the window that
// initiated it via postMessage; that window is then closed. Every failure
// renders the same generic error page.
func (h *OAuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")

	result, err := h.oauthUC.HandleCallback(c.Request().Context(), code, state)
	if err != nil {
		return c.HTML(http.StatusBadRequest, errorPage)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to encode oauth result", logger.Err(err))
		return c.HTML(http.StatusInternalServerError, errorPage)
	}

	return c.HTML(http.StatusOK, successPageHead+string(payload)+successPageTail)
}

// The callback pages are one-shot: they post the result to the opener and
// terminate their window. Result fields are a fixed JSON shape produced by
// json.Marshal, never raw query input.
const successPageHead = `<!DOCTYPE html>
<html>
<head><title>Connected</title></head>
<body>
<p>Account connected. This window will close.</p>
<script>
if (window.opener) {
  window.opener.postMessage({ type: "oauth:result", ok: true, result: `

const successPageTail = ` }, window.location.origin);
}
window.close();
</script>
</body>
</html>`

const errorPage = `<!DOCTYPE html>
<html>
<head><title>Connection failed</title></head>
<body>
<p>Something went wrong while connecting your account. You can close this window and try again.</p>
<script>
if (window.opener) {
  window.opener.postMessage({ type: "oauth:result", ok: false }, window.location.origin);
}
window.close();
</script>
</body>
</html>`
