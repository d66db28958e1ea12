package usecase

import (
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/services/auth"
)

// AuthUC implements the passwordless authentication usecase
type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(authRepo auth.AuthRepo, authGW auth.AuthGW, cfg *models.Config) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		authGW:   authGW,
		cfg:      cfg,
	}
}
