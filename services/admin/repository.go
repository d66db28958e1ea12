package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/superblog/auth/services/admin AdminRepo

// AdminRepo represents the admin repository interface. The audit log is
// append-only: the interface deliberately has no update or delete for it.
type AdminRepo interface {
	// GetAdminByEmail retrieves an admin account by email
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminAccount, error)

	// CreateAuditEntry appends an audit log entry
	CreateAuditEntry(ctx context.Context, entry *models.AuditLogEntry) error

	// ListAuditEntries returns audit entries, newest first
	ListAuditEntries(ctx context.Context, limit, offset int) ([]models.AuditLogEntry, error)

	// DeleteUser removes a reader account
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// IncrementLoginFails bumps the failed-login counter for the email and
	// returns the new count. The counter expires after window.
	IncrementLoginFails(ctx context.Context, email string, window time.Duration) (int64, error)

	// ClearLoginFails resets the failed-login counter after a success
	ClearLoginFails(ctx context.Context, email string) error
}
