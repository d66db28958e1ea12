package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/apperrors"
	"github.com/superblog/auth/internal/pkg/models"
)

// GetAdminByEmail retrieves an admin account by email
func (r *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	query := `
		SELECT id, email, password_hash, role, is_active, created_at
		FROM admin_accounts
		WHERE email = $1
	`

	var admin models.AdminAccount
	err := r.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin account: %w", err)
	}

	return &admin, nil
}

// DeleteUser removes a reader account
func (r *AdminRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Failed logins are counted per email in Redis; the counter TTL doubles as
// the lockout window.

func loginFailKey(email string) string {
	return fmt.Sprintf("admin:login_fails:%s", email)
}

// IncrementLoginFails bumps the failed-login counter for the email
func (r *AdminRepo) IncrementLoginFails(ctx context.Context, email string, window time.Duration) (int64, error) {
	key := loginFailKey(email)

	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment login fail counter: %w", err)
	}
	if count == 1 {
		if err := r.redisClient.Expire(ctx, key, window); err != nil {
			return 0, fmt.Errorf("failed to set lockout window: %w", err)
		}
	}

	return count, nil
}

// ClearLoginFails resets the failed-login counter after a success
func (r *AdminRepo) ClearLoginFails(ctx context.Context, email string) error {
	if err := r.redisClient.Delete(ctx, loginFailKey(email)); err != nil {
		return fmt.Errorf("failed to clear login fail counter: %w", err)
	}
	return nil
}
