package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/apperrors"
)

// GetUserTeam returns the team id for a user
func (r *AccessRepo) GetUserTeam(ctx context.Context, userID uuid.UUID) (string, error) {
	query := `
		SELECT team_id
		FROM users
		WHERE id = $1 AND is_active = true
	`

	var teamID string
	err := r.db.GetContext(ctx, &teamID, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to get user team: %w", err)
	}

	return teamID, nil
}
