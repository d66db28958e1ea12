package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/superblog/auth/internal/pkg/apperrors"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/internal/utils"
	"github.com/superblog/auth/services/auth"
)

// The generic failure message for every authentication error. Wrong code,
// unknown email and expired code must be indistinguishable to the caller.
const genericAuthError = "Invalid or expired code"

// AuthHandler handles HTTP requests for passwordless authentication
type AuthHandler struct {
	authUC auth.AuthUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// RegisterRoutes registers the auth endpoints
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, limiter echo.MiddlewareFunc, sessionMW echo.MiddlewareFunc) {
	group := e.Group("/api/auth")
	group.POST("/request", h.RequestCode, limiter)
	group.POST("/verify", h.VerifyCode, limiter)
	group.POST("/logout", h.Logout)
	group.GET("/me", h.Me, sessionMW)
}

// RequestCode handles one-time code requests
func (h *AuthHandler) RequestCode(c echo.Context) error {
	var request models.RequestCodeRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	devCode, err := h.authUC.RequestCode(c.Request().Context(), request.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return utils.BadRequestResponse(c, "Invalid email address")
		}
		logger.ErrorCtx(c.Request().Context(), "Failed to issue code", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to send code")
	}

	var data interface{}
	if devCode != "" {
		data = models.RequestCodeResponse{DevCode: devCode}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Code sent", data)
}

// VerifyCode handles code verification and issues the session cookie
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var request models.VerifyCodeRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.Email == "" || request.Code == "" {
		return utils.BadRequestResponse(c, "Email and code are required")
	}

	session, err := h.authUC.VerifyCode(c.Request().Context(), request.Email, request.Code, c.RealIP())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			return utils.BadRequestResponse(c, genericAuthError)
		case errors.Is(err, apperrors.ErrRateLimited):
			return utils.TooManyRequestsResponse(c, "Too many attempts, try again later")
		case apperrors.IsAuthFailure(err):
			return utils.BadRequestResponse(c, genericAuthError)
		default:
			logger.ErrorCtx(c.Request().Context(), "Verification failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Verification failed")
		}
	}

	c.SetCookie(SessionCookie(h.cfg.Session.CookieName, session.Token, time.Unix(session.ExpiresAt, 0), h.cfg.Session.Secure))

	return utils.SuccessResponse(c, http.StatusOK, "Verified", session)
}

// Logout clears the session cookie. The token is stateless, so clearing the
// cookie is the whole server-side effect; repeating it is harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(ExpiredCookie(h.cfg.Session.CookieName, h.cfg.Session.Secure))
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Me returns the authenticated session subject
func (h *AuthHandler) Me(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"user_id": fmt.Sprintf("%v", c.Get("user_id")),
		"email":   fmt.Sprintf("%v", c.Get("email")),
		"role":    fmt.Sprintf("%v", c.Get("role")),
	})
}

// SessionCookie builds the httpOnly session cookie with an explicit expiry
func SessionCookie(name, token string, expires time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that immediately removes the session
func ExpiredCookie(name string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
