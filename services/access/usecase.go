package access

import (
	"context"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/superblog/auth/services/access AccessUC

// AccessUC represents the access gate usecase interface
type AccessUC interface {
	// Status computes the access decision for the user's team. The decision
	// is recomputed on every call; nothing is persisted.
	Status(ctx context.Context, userID uuid.UUID) (*models.AccessResult, error)
}
