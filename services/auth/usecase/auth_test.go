package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/superblog/auth/internal/pkg/apperrors"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/internal/utils"
	"github.com/superblog/auth/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret: "test-secret",
			Issuer: "superblog-test",
		},
		OTP: models.OTPConfig{
			CodeLength:    6,
			TTLMinutes:    10,
			MaxAttempts:   5,
			AttemptWindow: 10,
		},
		Session: models.SessionConfig{
			TTLHours: 72,
		},
	}
}

func TestRequestCode_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	email := "reader@example.com"
	var storedHash string

	// Expectations
	mockRepo.EXPECT().
		CreateChallenge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, challenge *models.OtpChallenge) error {
			assert.Equal(t, email, challenge.Email)
			assert.Len(t, challenge.CodeHash, 64, "only the SHA-256 hash is stored")
			assert.True(t, challenge.ExpiresAt.After(time.Now()))
			storedHash = challenge.CodeHash
			return nil
		})
	mockRepo.EXPECT().DeleteExpiredChallenges(gomock.Any()).Return(int64(0), nil)
	mockGW.EXPECT().
		PublishOTPIssued(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.OTPNotificationEvent) error {
			assert.Equal(t, email, event.Email)
			assert.Len(t, event.Code, 6)
			assert.Equal(t, storedHash, utils.HashCode(event.Code), "published code matches the stored hash")
			return nil
		})

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	devCode, err := uc.RequestCode(context.Background(), "Reader@Example.com ")

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, devCode, "code is never echoed outside dev mode")
}

func TestRequestCode_DevModeEchoesCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	mockRepo.EXPECT().CreateChallenge(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().DeleteExpiredChallenges(gomock.Any()).Return(int64(2), nil)
	mockGW.EXPECT().PublishOTPIssued(gomock.Any(), gomock.Any()).Return(nil)

	cfg := testConfig()
	cfg.OTP.DevMode = true
	uc := NewAuthUC(mockRepo, mockGW, cfg)

	// Act
	devCode, err := uc.RequestCode(context.Background(), "reader@example.com")

	// Assert
	assert.NoError(t, err)
	assert.Len(t, devCode, 6)
}

func TestRequestCode_InvalidEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	_, err := uc.RequestCode(context.Background(), "not-an-email")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRequestCode_PublishError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	mockRepo.EXPECT().CreateChallenge(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().DeleteExpiredChallenges(gomock.Any()).Return(int64(0), nil)
	mockGW.EXPECT().PublishOTPIssued(gomock.Any(), gomock.Any()).Return(errors.New("nats unavailable"))

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	_, err := uc.RequestCode(context.Background(), "reader@example.com")

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hand off code for delivery")
}

func TestVerifyCode_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	email := "reader@example.com"
	code := "482913"
	user := &models.User{
		ID:    uuid.New(),
		Email: email,
	}

	// Expectations
	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), email, "10.0.0.1", 10*time.Minute).Return(int64(1), nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), email, utils.HashCode(code)).Return(nil)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(user, nil)
	mockRepo.EXPECT().TouchLastLogin(gomock.Any(), user.ID).Return(nil)
	mockRepo.EXPECT().ClearAttempts(gomock.Any(), email, "10.0.0.1").Return(nil)
	mockGW.EXPECT().PublishLogin(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	session, err := uc.VerifyCode(context.Background(), email, code, "10.0.0.1")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID.String(), session.UserID)
	assert.Equal(t, RoleReader, session.Role)
	assert.Greater(t, session.ExpiresAt, time.Now().Unix())
}

func TestVerifyCode_FirstLoginCreatesUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	email := "new@example.com"
	code := "112233"

	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), email, "10.0.0.1", gomock.Any()).Return(int64(1), nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), email, utils.HashCode(code)).Return(nil)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), email).Return(nil, apperrors.ErrNotFound)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, email, user.Email)
			user.ID = uuid.New()
			return nil
		})
	mockRepo.EXPECT().TouchLastLogin(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ClearAttempts(gomock.Any(), email, "10.0.0.1").Return(nil)
	mockGW.EXPECT().PublishLogin(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	session, err := uc.VerifyCode(context.Background(), email, code, "10.0.0.1")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
}

func TestVerifyCode_WrongCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	email := "reader@example.com"

	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), email, "10.0.0.1", gomock.Any()).Return(int64(2), nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), email, gomock.Any()).Return(apperrors.ErrAuthentication)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	session, err := uc.VerifyCode(context.Background(), email, "000000", "10.0.0.1")

	// Assert
	assert.Nil(t, session)
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestVerifyCode_UnknownEmailSameError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	email := "stranger@example.com"

	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), email, "10.0.0.1", gomock.Any()).Return(int64(1), nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), email, gomock.Any()).Return(apperrors.ErrNotFound)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	_, err := uc.VerifyCode(context.Background(), email, "123456", "10.0.0.1")

	// Assert: no-challenge and wrong-code are indistinguishable
	assert.ErrorIs(t, err, apperrors.ErrAuthentication)
}

func TestVerifyCode_RateLimited(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	email := "reader@example.com"

	mockRepo.EXPECT().IncrementAttempts(gomock.Any(), email, "10.0.0.1", gomock.Any()).Return(int64(6), nil)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	_, err := uc.VerifyCode(context.Background(), email, "123456", "10.0.0.1")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrRateLimited)
}

func TestVerifyCode_MissingCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	uc := NewAuthUC(mockRepo, mockGW, testConfig())

	// Act
	_, err := uc.VerifyCode(context.Background(), "reader@example.com", "", "10.0.0.1")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
