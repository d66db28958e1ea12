package newrelic

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application based on configuration.
// Returns nil when disabled; callers must tolerate a nil application.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	return nrApp
}

// TransactionMiddleware starts a New Relic transaction per request and puts
// it on the request context so downstream code can correlate logs.
func TransactionMiddleware(nrApp *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if nrApp == nil {
				return next(c)
			}

			txn := nrApp.StartTransaction(c.Request().Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(c.Request())
			w := txn.SetWebResponse(c.Response().Writer)
			c.Response().Writer = w

			ctx := newrelic.NewContext(c.Request().Context(), txn)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
