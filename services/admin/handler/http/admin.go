package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/superblog/auth/internal/pkg/apperrors"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/internal/utils"
	"github.com/superblog/auth/services/admin"
	authhttp "github.com/superblog/auth/services/auth/handler/http"
)

// AdminHandler handles the admin panel authentication endpoints
type AdminHandler struct {
	adminUC admin.AdminUC
	cfg     *models.Config
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC admin.AdminUC, cfg *models.Config) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		cfg:     cfg,
	}
}

// RegisterRoutes registers the admin endpoints. sessionMW validates the
// admin cookie; superAdminMW additionally requires the super_admin role.
func (h *AdminHandler) RegisterRoutes(e *echo.Echo, limiter, sessionMW, superAdminMW echo.MiddlewareFunc) {
	e.GET("/admin/login", h.LoginPage)
	e.POST("/admin/login", h.Login, limiter)
	e.GET("/admin/logout", h.Logout)
	e.GET("/admin/audit", h.ListAudit, sessionMW)
	e.DELETE("/admin/users/:id", h.DeleteUser, sessionMW, superAdminMW)
}

// LoginPage renders the login form
func (h *AdminHandler) LoginPage(c echo.Context) error {
	return c.HTML(http.StatusOK, loginPage(false))
}

// Login handles the form-encoded login submission. Success redirects to the
// panel; every failure re-renders the form with the same generic marker.
func (h *AdminHandler) Login(c echo.Context) error {
	var request models.AdminLoginRequest
	if err := c.Bind(&request); err != nil {
		return c.HTML(http.StatusOK, loginPage(true))
	}

	session, err := h.adminUC.Login(c.Request().Context(), request.Email, request.Password, c.RealIP())
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) &&
			!errors.Is(err, apperrors.ErrRateLimited) &&
			!apperrors.IsAuthFailure(err) {
			logger.ErrorCtx(c.Request().Context(), "Admin login error", logger.Err(err))
		}
		return c.HTML(http.StatusOK, loginPage(true))
	}

	c.SetCookie(authhttp.SessionCookie(h.cfg.Session.AdminCookieName, session.Token, time.Unix(session.ExpiresAt, 0), h.cfg.Session.Secure))

	return c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the admin session cookie
func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(authhttp.ExpiredCookie(h.cfg.Session.AdminCookieName, h.cfg.Session.Secure))
	return c.Redirect(http.StatusFound, "/admin/login")
}

// ListAudit returns audit entries, newest first
func (h *AdminHandler) ListAudit(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	entries, err := h.adminUC.ListAudit(c.Request().Context(), limit, offset)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to list audit entries", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list audit entries")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// DeleteUser removes a reader account. Requires super_admin.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	adminID, err := uuid.Parse(c.Get("user_id").(string))
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := c.Get("role").(string)

	if err := h.adminUC.DeleteUser(c.Request().Context(), adminID, role, targetID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAuthorization):
			return utils.ForbiddenResponse(c, "")
		case errors.Is(err, apperrors.ErrNotFound):
			return utils.ErrorResponseHandler(c, http.StatusNotFound, "User not found")
		default:
			logger.ErrorCtx(c.Request().Context(), "Failed to delete user", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to delete user")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "User deleted", nil)
}

// loginPage renders the minimal login form. The error marker is the same
// for every failure cause.
func loginPage(withError bool) string {
	errorMarker := ""
	if withError {
		errorMarker = `<p class="login-error">Invalid email or password</p>`
	}
	return `<!DOCTYPE html>
<html>
<head><title>Admin login</title></head>
<body>
<form method="POST" action="/admin/login">
` + errorMarker + `
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign in</button>
</form>
</body>
</html>`
}
