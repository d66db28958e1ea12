package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
	natspkg "github.com/superblog/auth/internal/pkg/nats"
	"github.com/superblog/auth/internal/utils"
)

// AuthGW implements the NATS gateway for the auth service
type AuthGW struct {
	client *natspkg.Client
	cfg    *models.Config
}

// NewAuthGW creates a new auth gateway
func NewAuthGW(client *natspkg.Client, cfg *models.Config) *AuthGW {
	return &AuthGW{
		client: client,
		cfg:    cfg,
	}
}

// PublishOTPIssued hands the raw code to the notification sink. The email
// collaborator subscribed to this subject performs the actual delivery.
func (g *AuthGW) PublishOTPIssued(ctx context.Context, event *models.OTPNotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP event: %w", err)
	}

	if err := g.client.Publish(g.cfg.OTP.NotifySubject, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish OTP notification",
			logger.String("email", utils.MaskEmail(event.Email)),
			logger.Err(err))
		return fmt.Errorf("failed to publish OTP notification: %w", err)
	}

	logger.InfoCtx(ctx, "Published OTP notification",
		logger.String("email", utils.MaskEmail(event.Email)),
		logger.Time("expires_at", event.ExpiresAt))

	return nil
}

// PublishLogin announces a successful authentication
func (g *AuthGW) PublishLogin(ctx context.Context, event *models.LoginEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal login event: %w", err)
	}

	if err := g.client.Publish(g.cfg.OTP.LoginSubject, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish login event",
			logger.String("user_id", event.UserID),
			logger.Err(err))
		return fmt.Errorf("failed to publish login event: %w", err)
	}

	return nil
}
