// Package access classifies a subscription profile into an access decision.
// The gate is a pure function of the profile; it keeps no state and is
// recomputed on every request.
package access

import "github.com/superblog/auth/internal/pkg/models"

// TrialBannerThreshold is the number of remaining trial days at or below
// which the countdown banner is surfaced.
const TrialBannerThreshold = 3

// Classify converts a subscription profile into an access decision.
// A missing profile means free-tier access and is allowed; that is a
// product decision, not a fallback.
func Classify(profile *models.SubscriptionProfile) models.AccessResult {
	if profile == nil {
		return models.AccessResult{Decision: models.AccessAllow}
	}

	switch profile.Status {
	case models.SubscriptionActive:
		return models.AccessResult{Decision: models.AccessAllow}

	case models.SubscriptionTrialing:
		if profile.DaysLeftInTrial == nil {
			return models.AccessResult{Decision: models.AccessAllow}
		}
		days := *profile.DaysLeftInTrial
		switch {
		case days <= 0:
			return models.AccessResult{Decision: models.AccessBlock}
		case days <= TrialBannerThreshold:
			return models.AccessResult{Decision: models.AccessAllowWithBanner, DaysLeft: days}
		default:
			return models.AccessResult{Decision: models.AccessAllow}
		}

	default:
		// inactive, expired, canceled, past_due and anything unknown
		return models.AccessResult{Decision: models.AccessBlock}
	}
}
