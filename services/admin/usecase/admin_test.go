package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/superblog/auth/internal/pkg/apperrors"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/internal/pkg/password"
	"github.com/superblog/auth/services/admin/mocks"
)

func adminTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret: "test-secret",
			Issuer: "superblog-test",
		},
		Session: models.SessionConfig{
			AdminTTLHours: 12,
		},
		Admin: models.AdminConfig{
			BcryptCost:     4,
			MaxLoginFails:  5,
			LockoutMinutes: 15,
		},
	}
}

func adminAccount(t *testing.T, plain string) *models.AdminAccount {
	t.Helper()

	hash, err := password.Hash(plain, 4)
	assert.NoError(t, err)

	return &models.AdminAccount{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
}

func TestAdminLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)

	account := adminAccount(t, "hunter2hunter2")

	mockRepo.EXPECT().IncrementLoginFails(gomock.Any(), account.Email, 15*time.Minute).Return(int64(1), nil)
	mockRepo.EXPECT().GetAdminByEmail(gomock.Any(), account.Email).Return(account, nil)
	mockRepo.EXPECT().ClearLoginFails(gomock.Any(), account.Email).Return(nil)
	mockRepo.EXPECT().
		CreateAuditEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *models.AuditLogEntry) error {
			assert.Equal(t, account.ID, entry.AdminID)
			assert.Equal(t, "login", entry.Action)
			assert.Equal(t, "session", entry.Resource)
			return nil
		})
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewAdminUC(mockRepo, mockGW, adminTestConfig())

	// Act
	session, err := uc.Login(context.Background(), "Admin@Example.com", "hunter2hunter2", "10.0.0.1")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, models.RoleSuperAdmin, session.Role)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)

	account := adminAccount(t, "hunter2hunter2")

	mockRepo.EXPECT().IncrementLoginFails(gomock.Any(), account.Email, gomock.Any()).Return(int64(1), nil)
	mockRepo.EXPECT().GetAdminByEmail(gomock.Any(), account.Email).Return(account, nil)

	uc := NewAdminUC(mockRepo, mockGW, adminTestConfig())

	// Act
	session, err := uc.Login(context.Background(), account.Email, "wrong-password", "10.0.0.1")

	// Assert
	assert.Nil(t, session)
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestAdminLogin_UnknownEmailSameError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)

	mockRepo.EXPECT().IncrementLoginFails(gomock.Any(), "ghost@example.com", gomock.Any()).Return(int64(1), nil)
	mockRepo.EXPECT().GetAdminByEmail(gomock.Any(), "ghost@example.com").Return(nil, apperrors.ErrNotFound)

	uc := NewAdminUC(mockRepo, mockGW, adminTestConfig())

	// Act
	_, err := uc.Login(context.Background(), "ghost@example.com", "whatever-pw", "10.0.0.1")

	// Assert: unknown email is indistinguishable from a wrong password
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestAdminLogin_InactiveAccount(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)

	account := adminAccount(t, "hunter2hunter2")
	account.IsActive = false

	mockRepo.EXPECT().IncrementLoginFails(gomock.Any(), account.Email, gomock.Any()).Return(int64(1), nil)
	mockRepo.EXPECT().GetAdminByEmail(gomock.Any(), account.Email).Return(account, nil)

	uc := NewAdminUC(mockRepo, mockGW, adminTestConfig())

	// Act
	_, err := uc.Login(context.Background(), account.Email, "hunter2hunter2", "10.0.0.1")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestAdminLogin_LockedOut(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)

	mockRepo.EXPECT().IncrementLoginFails(gomock.Any(), "admin@example.com", gomock.Any()).Return(int64(6), nil)

	uc := NewAdminUC(mockRepo, mockGW, adminTestConfig())

	// Act: correct credentials do not matter once locked out
	_, err := uc.Login(context.Background(), "admin@example.com", "hunter2hunter2", "10.0.0.1")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrRateLimited)
}

func TestAdminLogin_MissingCredentials(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAdminUC(mocks.NewMockAdminRepo(ctrl), mocks.NewMockAdminGW(ctrl), adminTestConfig())

	// Act
	_, err := uc.Login(context.Background(), "admin@example.com", "", "10.0.0.1")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDeleteUser_RequiresSuperAdmin(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAdminUC(mocks.NewMockAdminRepo(ctrl), mocks.NewMockAdminGW(ctrl), adminTestConfig())

	// Act: a plain admin may not delete accounts
	err := uc.DeleteUser(context.Background(), uuid.New(), models.RoleAdmin, uuid.New())

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)
}

func TestDeleteUser_Audited(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)

	adminID := uuid.New()
	targetID := uuid.New()

	mockRepo.EXPECT().DeleteUser(gomock.Any(), targetID).Return(nil)
	mockRepo.EXPECT().
		CreateAuditEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, entry *models.AuditLogEntry) error {
			assert.Equal(t, adminID, entry.AdminID)
			assert.Equal(t, "delete", entry.Action)
			assert.Equal(t, "user", entry.Resource)
			assert.Equal(t, targetID.String(), entry.ResourceID)
			return nil
		})
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewAdminUC(mockRepo, mockGW, adminTestConfig())

	// Act
	err := uc.DeleteUser(context.Background(), adminID, models.RoleSuperAdmin, targetID)

	// Assert
	assert.NoError(t, err)
}

func TestDeleteUser_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)

	targetID := uuid.New()
	mockRepo.EXPECT().DeleteUser(gomock.Any(), targetID).Return(apperrors.ErrNotFound)

	uc := NewAdminUC(mockRepo, mockGW, adminTestConfig())

	// Act: nothing is audited when nothing was deleted
	err := uc.DeleteUser(context.Background(), uuid.New(), models.RoleSuperAdmin, targetID)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
