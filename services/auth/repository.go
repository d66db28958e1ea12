package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/superblog/auth/services/auth AuthRepo

// AuthRepo represents the authentication repository interface
type AuthRepo interface {
	// CreateChallenge persists a new OTP challenge keyed by email
	CreateChallenge(ctx context.Context, challenge *models.OtpChallenge) error

	// ConsumeChallenge atomically looks up the newest unconsumed, unexpired
	// challenge for the email, compares the code hash and marks it consumed
	// in the same transaction. Two concurrent calls cannot both succeed.
	ConsumeChallenge(ctx context.Context, email, codeHash string) error

	// DeleteExpiredChallenges removes stale challenge rows
	DeleteExpiredChallenges(ctx context.Context) (int64, error)

	// GetUserByEmail retrieves a user by email
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateUser creates a user row for a first-time login
	CreateUser(ctx context.Context, user *models.User) error

	// TouchLastLogin records a successful login timestamp
	TouchLastLogin(ctx context.Context, userID uuid.UUID) error

	// IncrementAttempts bumps the verify-attempt counter for (email, ip)
	// and returns the new count. The counter expires after window.
	IncrementAttempts(ctx context.Context, email, ip string, window time.Duration) (int64, error)

	// ClearAttempts resets the verify-attempt counter after a success
	ClearAttempts(ctx context.Context, email, ip string) error
}
