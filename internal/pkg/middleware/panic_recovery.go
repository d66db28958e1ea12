package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace, and returns a generic 500 response.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stack := string(debug.Stack())

	requestID := c.Response().Header().Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(fmt.Errorf("panic: %v", r))
	}

	zapLogger.Error("Panic recovered",
		logger.Any("panic", r),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
		logger.String("stacktrace", stack),
	)

	if !c.Response().Committed {
		_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
