package auth

import (
	"context"

	"github.com/superblog/auth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/superblog/auth/services/auth AuthUC

// AuthUC represents the passwordless authentication usecase interface
type AuthUC interface {
	// RequestCode issues a one-time code for the email. The returned devCode
	// is empty unless dev mode is explicitly enabled.
	RequestCode(ctx context.Context, email string) (string, error)

	// VerifyCode checks a submitted code and issues a session on success.
	// All failure causes collapse into a single generic error.
	VerifyCode(ctx context.Context, email, code, ip string) (*models.AuthSession, error)
}
