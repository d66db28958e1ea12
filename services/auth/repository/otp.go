package repository

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/apperrors"
	"github.com/superblog/auth/internal/pkg/models"
)

// CreateChallenge creates a new OTP challenge record in the database
func (r *AuthRepo) CreateChallenge(ctx context.Context, challenge *models.OtpChallenge) error {
	query := `
		INSERT INTO otp_challenges (id, email, code_hash, created_at, expires_at, consumed)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		challenge.ID,
		challenge.Email,
		challenge.CodeHash,
		challenge.CreatedAt,
		challenge.ExpiresAt,
		challenge.Consumed,
	)

	if err != nil {
		return fmt.Errorf("failed to create OTP challenge: %w", err)
	}

	return nil
}

// ConsumeChallenge performs the atomic read-compare-consume step. The row is
// locked FOR UPDATE so two concurrent verifications of the same code cannot
// both succeed; the hash comparison is constant-time.
func (r *AuthRepo) ConsumeChallenge(ctx context.Context, email, codeHash string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT id, code_hash
		FROM otp_challenges
		WHERE email = $1 AND consumed = false AND expires_at > now()
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`

	var challengeID uuid.UUID
	var storedHash string
	err = tx.QueryRowContext(ctx, query, email).Scan(&challengeID, &storedHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load OTP challenge: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(storedHash), []byte(codeHash)) != 1 {
		return apperrors.ErrAuthentication
	}

	update := `
		UPDATE otp_challenges
		SET consumed = true
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, update, challengeID); err != nil {
		return fmt.Errorf("failed to consume OTP challenge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteExpiredChallenges removes challenges past their expiry
func (r *AuthRepo) DeleteExpiredChallenges(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM otp_challenges WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired challenges: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return rows, nil
}
