package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/superblog/auth/internal/pkg/apperrors"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/internal/pkg/signer"
	"github.com/superblog/auth/services/oauth"
	"golang.org/x/oauth2"
)

// OAuthUC implements the provider exchange usecase. Provider tokens pass
// through to the caller and are never persisted server-side.
type OAuthUC struct {
	stateRepo   oauth.StateRepo
	stateSigner *signer.StateSigner
	oauthConfig oauth2.Config
	cfg         *models.Config
}

// NewOAuthUC creates a new oauth usecase
func NewOAuthUC(stateRepo oauth.StateRepo, cfg *models.Config) *OAuthUC {
	maxAge := time.Duration(cfg.OAuth.StateMaxAge) * time.Minute

	return &OAuthUC{
		stateRepo:   stateRepo,
		stateSigner: signer.NewStateSigner([]byte(cfg.OAuth.StateSecret), maxAge),
		oauthConfig: oauth2.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
			Scopes:       cfg.OAuth.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuth.AuthURL,
				TokenURL: cfg.OAuth.TokenURL,
			},
		},
		cfg: cfg,
	}
}

// AuthorizeURL builds the provider authorize URL with a fresh signed state
func (u *OAuthUC) AuthorizeURL(ctx context.Context) (string, error) {
	state, _, err := u.stateSigner.CreateState()
	if err != nil {
		return "", fmt.Errorf("failed to create state: %w", err)
	}

	return u.oauthConfig.AuthCodeURL(state), nil
}

// HandleCallback verifies and consumes the signed state, then exchanges the
// authorization code at the provider's token endpoint. State failures,
// replays and provider failures all collapse into apperrors.ErrCSRF so the
// rendered error page cannot leak the cause; the detail is logged here.
func (u *OAuthUC) HandleCallback(ctx context.Context, code, state string) (*models.OAuthResult, error) {
	if code == "" || state == "" {
		logger.WarnCtx(ctx, "OAuth callback missing parameters",
			logger.Bool("has_code", code != ""),
			logger.Bool("has_state", state != ""))
		return nil, apperrors.ErrCSRF
	}

	nonce, err := u.stateSigner.Verify(state)
	if err != nil {
		logger.WarnCtx(ctx, "OAuth state verification failed", logger.Err(err))
		return nil, apperrors.ErrCSRF
	}

	firstUse, err := u.stateRepo.MarkStateUsed(ctx, nonce, u.stateSigner.MaxAge())
	if err != nil {
		return nil, fmt.Errorf("failed to record state use: %w", err)
	}
	if !firstUse {
		logger.WarnCtx(ctx, "OAuth state replay detected", logger.String("nonce", nonce))
		return nil, apperrors.ErrCSRF
	}

	token, err := u.oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.WarnCtx(ctx, "OAuth code exchange failed", logger.Err(err))
		return nil, apperrors.ErrCSRF
	}

	result := &models.OAuthResult{
		TokenType: token.TokenType,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		result.Scope = scope
	}
	if !token.Expiry.IsZero() {
		result.ExpiresIn = int64(time.Until(token.Expiry).Seconds())
	}

	logger.InfoCtx(ctx, "OAuth exchange completed", logger.String("token_type", token.TokenType))

	return result, nil
}
