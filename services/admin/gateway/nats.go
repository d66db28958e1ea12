package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
	natspkg "github.com/superblog/auth/internal/pkg/nats"
)

// AdminGW implements the NATS gateway for the admin service
type AdminGW struct {
	client *natspkg.Client
	cfg    *models.Config
}

// NewAdminGW creates a new admin gateway
func NewAdminGW(client *natspkg.Client, cfg *models.Config) *AdminGW {
	return &AdminGW{
		client: client,
		cfg:    cfg,
	}
}

// PublishAudit fans an audit entry out to downstream consumers
func (g *AdminGW) PublishAudit(ctx context.Context, entry *models.AuditLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	if err := g.client.Publish(g.cfg.Admin.AuditSubject, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish audit entry",
			logger.String("action", entry.Action),
			logger.Err(err))
		return fmt.Errorf("failed to publish audit entry: %w", err)
	}

	return nil
}
