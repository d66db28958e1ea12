package admin

import (
	"context"

	"github.com/superblog/auth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/superblog/auth/services/admin AdminGW

// AdminGW represents the outbound gateway interface for the admin service
type AdminGW interface {
	// PublishAudit fans an audit entry out to downstream consumers. The
	// database row remains the source of truth.
	PublishAudit(ctx context.Context, entry *models.AuditLogEntry) error
}
