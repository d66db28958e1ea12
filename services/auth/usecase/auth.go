package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/superblog/auth/internal/pkg/apperrors"
	jwtpkg "github.com/superblog/auth/internal/pkg/jwt"
	"github.com/superblog/auth/internal/pkg/logger"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/internal/utils"
)

// RoleReader is the session role issued by the passwordless flow
const RoleReader = "reader"

// RequestCode issues a one-time code for the given email. The response is
// identical whether or not the email is already registered.
func (u *AuthUC) RequestCode(ctx context.Context, email string) (string, error) {
	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return "", fmt.Errorf("malformed email: %w", apperrors.ErrValidation)
	}

	code, err := utils.GenerateNumericCode(u.cfg.OTP.CodeLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	now := time.Now()
	challenge := &models.OtpChallenge{
		ID:        uuid.New(),
		Email:     email,
		CodeHash:  utils.HashCode(code),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(u.cfg.OTP.TTLMinutes) * time.Minute),
	}

	if err := u.authRepo.CreateChallenge(ctx, challenge); err != nil {
		return "", fmt.Errorf("failed to create challenge: %w", err)
	}

	// Opportunistic sweep; stale rows are harmless until then.
	if deleted, err := u.authRepo.DeleteExpiredChallenges(ctx); err == nil && deleted > 0 {
		logger.DebugCtx(ctx, "Swept expired OTP challenges", logger.Int64("deleted", deleted))
	}

	event := &models.OTPNotificationEvent{
		Email:     email,
		Code:      code,
		ExpiresAt: challenge.ExpiresAt,
	}
	if err := u.authGW.PublishOTPIssued(ctx, event); err != nil {
		return "", fmt.Errorf("failed to hand off code for delivery: %w", err)
	}

	logger.InfoCtx(ctx, "Issued OTP challenge",
		logger.String("email", utils.MaskEmail(email)),
		logger.Time("expires_at", challenge.ExpiresAt))

	if u.cfg.OTP.DevMode {
		return code, nil
	}
	return "", nil
}

// VerifyCode checks a submitted code, consumes the challenge and issues a
// session. Wrong code, unknown email and expired challenge are externally
// indistinguishable; the detailed reason is only logged.
func (u *AuthUC) VerifyCode(ctx context.Context, email, code, ip string) (*models.AuthSession, error) {
	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) || code == "" {
		return nil, fmt.Errorf("malformed verify request: %w", apperrors.ErrValidation)
	}

	window := time.Duration(u.cfg.OTP.AttemptWindow) * time.Minute
	attempts, err := u.authRepo.IncrementAttempts(ctx, email, ip, window)
	if err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}
	if attempts > int64(u.cfg.OTP.MaxAttempts) {
		logger.WarnCtx(ctx, "OTP verify attempts exhausted",
			logger.String("email", utils.MaskEmail(email)),
			logger.String("ip", ip),
			logger.Int64("attempts", attempts))
		return nil, apperrors.ErrRateLimited
	}

	if err := u.authRepo.ConsumeChallenge(ctx, email, utils.HashCode(code)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrAuthentication) {
			logger.WarnCtx(ctx, "OTP verification failed",
				logger.String("email", utils.MaskEmail(email)),
				logger.String("ip", ip),
				logger.Err(err))
			return nil, apperrors.ErrAuthentication
		}
		return nil, fmt.Errorf("failed to consume challenge: %w", err)
	}

	user, err := u.authRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		// First login creates the account
		user = &models.User{Email: email}
		if err := u.authRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	if err := u.authRepo.TouchLastLogin(ctx, user.ID); err != nil {
		logger.WarnCtx(ctx, "Failed to record last login", logger.Err(err))
	}
	if err := u.authRepo.ClearAttempts(ctx, email, ip); err != nil {
		logger.WarnCtx(ctx, "Failed to clear attempt counter", logger.Err(err))
	}

	ttl := time.Duration(u.cfg.Session.TTLHours) * time.Hour
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID.String(), user.Email, RoleReader, ttl, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	// Best-effort; the session is already committed.
	if err := u.authGW.PublishLogin(ctx, &models.LoginEvent{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Timestamp: time.Now(),
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish login event", logger.Err(err))
	}

	return &models.AuthSession{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      RoleReader,
		ExpiresAt: expiresAt,
	}, nil
}
