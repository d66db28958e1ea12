package models

// Subscription statuses reported by the billing collaborator. Anything
// outside trialing/active blocks access.
const (
	SubscriptionTrialing = "trialing"
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
	SubscriptionExpired  = "expired"
	SubscriptionCanceled = "canceled"
	SubscriptionPastDue  = "past_due"
)

// SubscriptionProfile is the read-only billing state consumed by the access
// gate. DaysLeftInTrial is nil when billing reports no trial countdown.
type SubscriptionProfile struct {
	TeamID          string `json:"team_id"`
	Status          string `json:"status"`
	DaysLeftInTrial *int   `json:"days_left_in_trial"`
}

// AccessDecision is the outcome of classifying a subscription profile
type AccessDecision string

const (
	AccessAllow           AccessDecision = "allow"
	AccessAllowWithBanner AccessDecision = "allow_with_banner"
	AccessBlock           AccessDecision = "block"
)

// AccessResult pairs a decision with the trial days surfaced in the banner
type AccessResult struct {
	Decision AccessDecision `json:"decision"`
	DaysLeft int            `json:"days_left,omitempty"`
}

// OAuthResult is relayed to the window that initiated the provider flow.
// The provider access token itself is never persisted server-side.
type OAuthResult struct {
	TokenType string `json:"token_type"`
	Scope     string `json:"scope,omitempty"`
	ExpiresIn int64  `json:"expires_in,omitempty"`
}
