package usecase

import (
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/services/admin"
)

// AdminUC implements the admin panel usecase
type AdminUC struct {
	adminRepo admin.AdminRepo
	adminGW   admin.AdminGW
	cfg       *models.Config
}

// NewAdminUC creates a new admin usecase
func NewAdminUC(adminRepo admin.AdminRepo, adminGW admin.AdminGW, cfg *models.Config) *AdminUC {
	return &AdminUC{
		adminRepo: adminRepo,
		adminGW:   adminGW,
		cfg:       cfg,
	}
}
