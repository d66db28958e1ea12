package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/superblog/auth/internal/pkg/database"
)

// StateRepo implements single-use state tracking in Redis. SETNX gives the
// check-and-set a single-writer guarantee across instances.
type StateRepo struct {
	redisClient *database.RedisClient
}

// NewStateRepo creates a new state repository
func NewStateRepo(redisClient *database.RedisClient) *StateRepo {
	return &StateRepo{redisClient: redisClient}
}

// MarkStateUsed records the nonce as consumed for the validity window
func (r *StateRepo) MarkStateUsed(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("oauth:state:%s", nonce)

	firstUse, err := r.redisClient.SetNX(ctx, key, 1, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to record state use: %w", err)
	}
	return firstUse, nil
}
