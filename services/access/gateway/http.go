package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/superblog/auth/internal/pkg/database"
	httpclient "github.com/superblog/auth/internal/pkg/http"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
)

// noProfileMarker is cached when billing reports no record for a team, so
// repeated lookups for free-tier teams do not hit the billing API.
const noProfileMarker = "none"

// BillingGW fetches subscription profiles from the billing API and caches
// them in Redis keyed by team.
type BillingGW struct {
	client      *httpclient.Client
	redisClient *database.RedisClient
	cacheTTL    time.Duration
}

// NewBillingGW creates a new billing gateway
func NewBillingGW(redisClient *database.RedisClient, cfg *models.Config) *BillingGW {
	return &BillingGW{
		client:      httpclient.NewClient(cfg.Billing.ServiceURL, time.Duration(cfg.Billing.TimeoutSeconds)*time.Second),
		redisClient: redisClient,
		cacheTTL:    time.Duration(cfg.Billing.CacheTTLMinutes) * time.Minute,
	}
}

// GetProfile returns the subscription profile for a team, served from cache
// when a fresh entry exists. A nil profile means billing has no record.
func (g *BillingGW) GetProfile(ctx context.Context, teamID string) (*models.SubscriptionProfile, error) {
	key := cacheKey(teamID)

	cached, err := g.redisClient.Get(ctx, key)
	switch {
	case err == nil:
		if cached == noProfileMarker {
			return nil, nil
		}
		var profile models.SubscriptionProfile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return &profile, nil
		}
		// Corrupt cache entry, fall through to the API
		logger.WarnCtx(ctx, "Discarding unreadable billing cache entry",
			logger.String("team_id", teamID))
	case err != redis.Nil:
		logger.WarnCtx(ctx, "Billing cache read failed, falling back to API",
			logger.String("team_id", teamID),
			logger.Err(err))
	}

	profile, err := g.fetchProfile(ctx, teamID)
	if err != nil {
		return nil, err
	}

	g.cacheProfile(ctx, key, profile)
	return profile, nil
}

// fetchProfile calls the billing API. A 404 is translated by the billing
// service into an empty body with team_id unset, which we treat as no record.
func (g *BillingGW) fetchProfile(ctx context.Context, teamID string) (*models.SubscriptionProfile, error) {
	var profile models.SubscriptionProfile
	path := fmt.Sprintf("/internal/subscriptions/%s", teamID)
	if err := g.client.GetJSON(ctx, path, &profile); err != nil {
		return nil, fmt.Errorf("failed to fetch subscription profile: %w", err)
	}

	if profile.TeamID == "" {
		return nil, nil
	}
	return &profile, nil
}

func (g *BillingGW) cacheProfile(ctx context.Context, key string, profile *models.SubscriptionProfile) {
	value := noProfileMarker
	if profile != nil {
		data, err := json.Marshal(profile)
		if err != nil {
			return
		}
		value = string(data)
	}

	if err := g.redisClient.Set(ctx, key, value, g.cacheTTL); err != nil {
		logger.WarnCtx(ctx, "Failed to cache billing profile", logger.Err(err))
	}
}

func cacheKey(teamID string) string {
	return fmt.Sprintf("billing:profile:%s", teamID)
}
