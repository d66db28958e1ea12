package oauth

import (
	"context"

	"github.com/superblog/auth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/superblog/auth/services/oauth OAuthUC

// OAuthUC represents the provider exchange usecase interface
type OAuthUC interface {
	// AuthorizeURL builds the provider authorize URL with a fresh signed state
	AuthorizeURL(ctx context.Context) (string, error)

	// HandleCallback verifies and consumes the state, then exchanges the
	// authorization code. Every failure cause maps to the same generic error.
	HandleCallback(ctx context.Context, code, state string) (*models.OAuthResult, error)
}
