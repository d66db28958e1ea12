package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Checker verifies a single dependency is reachable
type Checker func(ctx context.Context) error

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		GoVersion:   runtime.Version(),
		ServiceName: serviceName,
	}
	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}

	return func(c echo.Context) error {
		buildInfo.Hostname = hostname
		buildInfo.ServerTime = time.Now()

		return c.JSON(http.StatusOK, buildInfo)
	}
}

// NewReadyHandler creates a readiness handler that runs dependency checks
func NewReadyHandler(checkers map[string]Checker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checkers))
		for name, check := range checkers {
			if err := check(ctx); err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				results[name] = "ok"
			}
		}

		return c.JSON(status, results)
	}
}

// RegisterHealthEndpoints registers ping and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers map[string]Checker) {
	e.GET("/health/ping", NewPingHandler(serviceName))
	e.GET("/health/ready", NewReadyHandler(checkers))
}
