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
	"github.com/superblog/auth/internal/pkg/password"
	"github.com/superblog/auth/internal/utils"
)

// Login authenticates an admin with email and password. Unknown email,
// wrong password and inactive account all return the same generic error;
// the detailed reason is only logged.
func (u *AdminUC) Login(ctx context.Context, email, plainPassword, ip string) (*models.AuthSession, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || plainPassword == "" {
		return nil, fmt.Errorf("missing credentials: %w", apperrors.ErrValidation)
	}

	window := time.Duration(u.cfg.Admin.LockoutMinutes) * time.Minute
	fails, err := u.adminRepo.IncrementLoginFails(ctx, email, window)
	if err != nil {
		return nil, fmt.Errorf("failed to count login attempts: %w", err)
	}
	if fails > int64(u.cfg.Admin.MaxLoginFails) {
		logger.WarnCtx(ctx, "Admin login locked out",
			logger.String("email", utils.MaskEmail(email)),
			logger.String("ip", ip),
			logger.Int64("fails", fails))
		return nil, apperrors.ErrRateLimited
	}

	admin, err := u.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Burn a hash comparison anyway so response timing does not
			// reveal whether the account exists.
			password.Verify(plainPassword, dummyHash)
			logger.WarnCtx(ctx, "Admin login for unknown email",
				logger.String("email", utils.MaskEmail(email)),
				logger.String("ip", ip))
			return nil, apperrors.ErrAuthentication
		}
		return nil, fmt.Errorf("failed to load admin account: %w", err)
	}

	if !admin.IsActive || !password.Verify(plainPassword, admin.PasswordHash) {
		logger.WarnCtx(ctx, "Admin login failed",
			logger.String("email", utils.MaskEmail(email)),
			logger.String("ip", ip),
			logger.Bool("active", admin.IsActive))
		return nil, apperrors.ErrAuthentication
	}

	if err := u.adminRepo.ClearLoginFails(ctx, email); err != nil {
		logger.WarnCtx(ctx, "Failed to clear login fail counter", logger.Err(err))
	}

	ttl := time.Duration(u.cfg.Session.AdminTTLHours) * time.Hour
	token, expiresAt, err := jwtpkg.GenerateToken(admin.ID.String(), admin.Email, admin.Role, ttl, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue admin session: %w", err)
	}

	u.audit(ctx, &models.AuditLogEntry{
		AdminID:  admin.ID,
		Action:   "login",
		Resource: "session",
	})

	return &models.AuthSession{
		Token:     token,
		UserID:    admin.ID.String(),
		Role:      admin.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// ListAudit returns audit entries, newest first
func (u *AdminUC) ListAudit(ctx context.Context, limit, offset int) ([]models.AuditLogEntry, error) {
	return u.adminRepo.ListAuditEntries(ctx, limit, offset)
}

// DeleteUser removes a reader account. The role is re-checked here even
// though the route is already gated, so the restriction holds for every
// caller of the usecase.
func (u *AdminUC) DeleteUser(ctx context.Context, adminID uuid.UUID, adminRole string, targetID uuid.UUID) error {
	if adminRole != models.RoleSuperAdmin {
		return fmt.Errorf("user deletion requires super_admin: %w", apperrors.ErrAuthorization)
	}

	if err := u.adminRepo.DeleteUser(ctx, targetID); err != nil {
		return err
	}

	u.audit(ctx, &models.AuditLogEntry{
		AdminID:    adminID,
		Action:     "delete",
		Resource:   "user",
		ResourceID: targetID.String(),
	})

	return nil
}

// audit appends the entry and fans it out. The row write is the effect that
// must stand; the publish is best-effort.
func (u *AdminUC) audit(ctx context.Context, entry *models.AuditLogEntry) {
	if err := u.adminRepo.CreateAuditEntry(ctx, entry); err != nil {
		logger.ErrorCtx(ctx, "Failed to append audit entry",
			logger.String("action", entry.Action),
			logger.String("resource", entry.Resource),
			logger.Err(err))
		return
	}
	if err := u.adminGW.PublishAudit(ctx, entry); err != nil {
		logger.WarnCtx(ctx, "Failed to publish audit entry", logger.Err(err))
	}
}

// dummyHash is a bcrypt hash of a random string, used to equalize timing on
// unknown-email logins.
const dummyHash = "$2a$12$K8GpVzYxTnBYl1sM0QaOCOeFZ3a9N4vYFwLqkXh0eUSP0pZfW0K1W"
