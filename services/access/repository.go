package access

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/superblog/auth/services/access AccessRepo

// AccessRepo resolves the team a user belongs to
type AccessRepo interface {
	// GetUserTeam returns the team id for a user
	GetUserTeam(ctx context.Context, userID uuid.UUID) (string, error)
}
