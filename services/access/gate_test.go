package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/superblog/auth/internal/pkg/models"
)

func intPtr(v int) *int { return &v }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		profile  *models.SubscriptionProfile
		decision models.AccessDecision
		daysLeft int
	}{
		{
			name:     "no billing record allows",
			profile:  nil,
			decision: models.AccessAllow,
		},
		{
			name:     "active allows",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionActive},
			decision: models.AccessAllow,
		},
		{
			name:     "trial with plenty of days allows",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionTrialing, DaysLeftInTrial: intPtr(14)},
			decision: models.AccessAllow,
		},
		{
			name:     "trial without countdown allows",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionTrialing},
			decision: models.AccessAllow,
		},
		{
			name:     "trial at threshold shows banner",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionTrialing, DaysLeftInTrial: intPtr(3)},
			decision: models.AccessAllowWithBanner,
			daysLeft: 3,
		},
		{
			name:     "last trial day shows banner",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionTrialing, DaysLeftInTrial: intPtr(1)},
			decision: models.AccessAllowWithBanner,
			daysLeft: 1,
		},
		{
			name:     "trial ran out blocks",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionTrialing, DaysLeftInTrial: intPtr(0)},
			decision: models.AccessBlock,
		},
		{
			name:     "negative trial days blocks",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionTrialing, DaysLeftInTrial: intPtr(-2)},
			decision: models.AccessBlock,
		},
		{
			name:     "expired blocks",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionExpired},
			decision: models.AccessBlock,
		},
		{
			name:     "canceled blocks",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionCanceled},
			decision: models.AccessBlock,
		},
		{
			name:     "past due blocks",
			profile:  &models.SubscriptionProfile{Status: models.SubscriptionPastDue},
			decision: models.AccessBlock,
		},
		{
			name:     "unknown status blocks",
			profile:  &models.SubscriptionProfile{Status: "weird"},
			decision: models.AccessBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.profile)
			assert.Equal(t, tt.decision, result.Decision)
			assert.Equal(t, tt.daysLeft, result.DaysLeft)
		})
	}
}
