package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/superblog/auth/internal/pkg/apperrors"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/services/access/mocks"
)

func TestStatus_ActiveSubscription(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccessRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)

	userID := uuid.New()
	mockRepo.EXPECT().GetUserTeam(gomock.Any(), userID).Return("team-1", nil)
	mockGW.EXPECT().GetProfile(gomock.Any(), "team-1").Return(&models.SubscriptionProfile{
		TeamID: "team-1",
		Status: models.SubscriptionActive,
	}, nil)

	uc := NewAccessUC(mockRepo, mockGW)

	// Act
	result, err := uc.Status(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.AccessAllow, result.Decision)
}

func TestStatus_TrialBanner(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccessRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)

	userID := uuid.New()
	days := 2
	mockRepo.EXPECT().GetUserTeam(gomock.Any(), userID).Return("team-1", nil)
	mockGW.EXPECT().GetProfile(gomock.Any(), "team-1").Return(&models.SubscriptionProfile{
		TeamID:          "team-1",
		Status:          models.SubscriptionTrialing,
		DaysLeftInTrial: &days,
	}, nil)

	uc := NewAccessUC(mockRepo, mockGW)

	// Act
	result, err := uc.Status(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.AccessAllowWithBanner, result.Decision)
	assert.Equal(t, 2, result.DaysLeft)
}

func TestStatus_BillingDownAllows(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccessRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)

	userID := uuid.New()
	mockRepo.EXPECT().GetUserTeam(gomock.Any(), userID).Return("team-1", nil)
	mockGW.EXPECT().GetProfile(gomock.Any(), "team-1").Return(nil, errors.New("billing unreachable"))

	uc := NewAccessUC(mockRepo, mockGW)

	// Act
	result, err := uc.Status(context.Background(), userID)

	// Assert: availability beats strictness when billing is down
	assert.NoError(t, err)
	assert.Equal(t, models.AccessAllow, result.Decision)
}

func TestStatus_UnknownUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccessRepo(ctrl)
	mockGW := mocks.NewMockBillingGW(ctrl)

	userID := uuid.New()
	mockRepo.EXPECT().GetUserTeam(gomock.Any(), userID).Return("", apperrors.ErrNotFound)

	uc := NewAccessUC(mockRepo, mockGW)

	// Act
	result, err := uc.Status(context.Background(), userID)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
