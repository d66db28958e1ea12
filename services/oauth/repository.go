package oauth

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/superblog/auth/services/oauth StateRepo

// StateRepo tracks which state nonces have already been consumed
type StateRepo interface {
	// MarkStateUsed records the nonce as consumed. Returns true on first
	// use and false when the nonce was seen before. The record expires
	// together with the state's validity window.
	MarkStateUsed(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
}
