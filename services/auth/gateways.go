package auth

import (
	"context"

	"github.com/superblog/auth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/superblog/auth/services/auth AuthGW

// AuthGW represents the outbound gateway interface for the auth service.
// The email collaborator consumes the notification subject; this service
// never sends mail itself.
type AuthGW interface {
	// PublishOTPIssued hands the raw code to the out-of-band delivery sink
	PublishOTPIssued(ctx context.Context, event *models.OTPNotificationEvent) error

	// PublishLogin announces a successful authentication
	PublishLogin(ctx context.Context, event *models.LoginEvent) error
}
