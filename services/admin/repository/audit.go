package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/models"
)

// The audit log is append-only. Create and List are the only statements
// touching the table anywhere in this codebase.

// CreateAuditEntry appends an audit log entry
func (r *AdminRepo) CreateAuditEntry(ctx context.Context, entry *models.AuditLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO audit_logs (id, admin_id, action, resource, resource_id, created_at)
		VALUES (:id, :admin_id, :action, :resource, :resource_id, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

// ListAuditEntries returns audit entries, newest first
func (r *AdminRepo) ListAuditEntries(ctx context.Context, limit, offset int) ([]models.AuditLogEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, admin_id, action, resource, resource_id, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	entries := []models.AuditLogEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
