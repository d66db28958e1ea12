package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/services/access"
)

// Status computes the access decision for the user's team
func (u *AccessUC) Status(ctx context.Context, userID uuid.UUID) (*models.AccessResult, error) {
	teamID, err := u.accessRepo.GetUserTeam(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	profile, err := u.billingGW.GetProfile(ctx, teamID)
	if err != nil {
		// Billing being down must not lock paying readers out. Allow and
		// let the next request retry the lookup.
		logger.WarnCtx(ctx, "Billing lookup failed, allowing access",
			logger.String("team_id", teamID),
			logger.Err(err))
		return &models.AccessResult{Decision: models.AccessAllow}, nil
	}

	result := access.Classify(profile)
	return &result, nil
}
