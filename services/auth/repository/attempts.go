package repository

import (
	"context"
	"fmt"
	"time"
)

// Verify attempts are counted per (email, ip) in Redis so the limiter state
// is shared across instances.

func attemptKey(email, ip string) string {
	return fmt.Sprintf("otp:attempts:%s:%s", email, ip)
}

// IncrementAttempts bumps the verify-attempt counter and returns the new
// count. The window TTL is set when the counter is first created.
func (r *AuthRepo) IncrementAttempts(ctx context.Context, email, ip string, window time.Duration) (int64, error) {
	key := attemptKey(email, ip)

	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment attempt counter: %w", err)
	}
	if count == 1 {
		if err := r.redisClient.Expire(ctx, key, window); err != nil {
			return 0, fmt.Errorf("failed to set attempt window: %w", err)
		}
	}

	return count, nil
}

// ClearAttempts resets the verify-attempt counter after a success
func (r *AuthRepo) ClearAttempts(ctx context.Context, email, ip string) error {
	if err := r.redisClient.Delete(ctx, attemptKey(email, ip)); err != nil {
		return fmt.Errorf("failed to clear attempt counter: %w", err)
	}
	return nil
}
