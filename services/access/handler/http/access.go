package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/internal/utils"
	"github.com/superblog/auth/services/access"
)

// TrialDaysHeader carries the remaining trial days when the gate decides
// allow_with_banner, so the UI can render the countdown.
const TrialDaysHeader = "X-Trial-Days-Left"

// AccessHandler handles the access status endpoint
type AccessHandler struct {
	accessUC access.AccessUC
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(accessUC access.AccessUC) *AccessHandler {
	return &AccessHandler{
		accessUC: accessUC,
	}
}

// RegisterRoutes registers the access endpoints
func (h *AccessHandler) RegisterRoutes(e *echo.Echo, sessionMW echo.MiddlewareFunc) {
	api := e.Group("/api/access", sessionMW)
	api.GET("/status", h.Status)
}

// Status returns the access decision for the session's team
func (h *AccessHandler) Status(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.accessUC.Status(c.Request().Context(), userID)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to compute access status", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to compute access status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GateMiddleware recomputes the access gate on every request to a protected
// route. Blocked sessions get 402; trial sessions close to expiry pass
// through with the countdown header set.
func GateMiddleware(accessUC access.AccessUC) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := sessionUserID(c)
			if err != nil {
				return utils.UnauthorizedResponse(c, "")
			}

			result, err := accessUC.Status(c.Request().Context(), userID)
			if err != nil {
				// The gate must not take content down with it; allow and
				// let the next request re-evaluate.
				logger.WarnCtx(c.Request().Context(), "Access gate unavailable, allowing request",
					logger.Err(err))
				return next(c)
			}

			switch result.Decision {
			case models.AccessBlock:
				return utils.PaymentRequiredResponse(c, "Subscription required")
			case models.AccessAllowWithBanner:
				c.Response().Header().Set(TrialDaysHeader, strconv.Itoa(result.DaysLeft))
			}

			return next(c)
		}
	}
}

func sessionUserID(c echo.Context) (uuid.UUID, error) {
	raw, _ := c.Get("user_id").(string)
	return uuid.Parse(raw)
}
