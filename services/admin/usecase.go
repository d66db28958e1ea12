package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/superblog/auth/services/admin AdminUC

// AdminUC represents the admin panel usecase interface
type AdminUC interface {
	// Login authenticates an admin with email and password and issues an
	// admin session. Every login, successful or not, is bounded by the
	// failed-attempt lockout.
	Login(ctx context.Context, email, password, ip string) (*models.AuthSession, error)

	// ListAudit returns audit entries, newest first
	ListAudit(ctx context.Context, limit, offset int) ([]models.AuditLogEntry, error)

	// DeleteUser removes a reader account. Restricted to super_admin; the
	// action is audited.
	DeleteUser(ctx context.Context, adminID uuid.UUID, adminRole string, targetID uuid.UUID) error
}
