package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware creates request-logging middleware for Echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userIDStr := "anonymous"
			if userID := c.Get("user_id"); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			if txn != nil {
				txn.AddAttribute("user_id", userIDStr)
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, method, path, clientIP, userIDStr, requestID, statusCode, latency, err)

			return err
		}
	}
}
