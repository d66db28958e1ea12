package access

import (
	"context"

	"github.com/superblog/auth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/superblog/auth/services/access BillingGW

// BillingGW fetches subscription profiles from the billing collaborator.
// A nil profile with a nil error means billing has no record for the team.
type BillingGW interface {
	// GetProfile returns the subscription profile for a team
	GetProfile(ctx context.Context, teamID string) (*models.SubscriptionProfile, error)
}
