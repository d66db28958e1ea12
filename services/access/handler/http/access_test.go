package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/services/access/mocks"
)

func newStatusContext(e *echo.Echo, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/access/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestStatus_ReturnsDecision(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccessUC := mocks.NewMockAccessUC(ctrl)
	handler := NewAccessHandler(mockAccessUC)

	userID := uuid.New()
	e := echo.New()
	c, rec := newStatusContext(e, userID.String())

	mockAccessUC.EXPECT().Status(gomock.Any(), userID).Return(&models.AccessResult{
		Decision: models.AccessAllowWithBanner,
		DaysLeft: 2,
	}, nil)

	// Act
	err := handler.Status(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"decision":"allow_with_banner"`)
	assert.Contains(t, rec.Body.String(), `"days_left":2`)
}

func TestStatus_NoSessionSubject(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAccessHandler(mocks.NewMockAccessUC(ctrl))

	e := echo.New()
	c, rec := newStatusContext(e, "")

	// Act
	err := handler.Status(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func runGate(t *testing.T, mockAccessUC *mocks.MockAccessUC, userID uuid.UUID) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID.String())

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}

	err := GateMiddleware(mockAccessUC)(next)(c)
	assert.NoError(t, err)
	return rec, reached
}

func TestGateMiddleware_AllowPassesThrough(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccessUC := mocks.NewMockAccessUC(ctrl)
	userID := uuid.New()
	mockAccessUC.EXPECT().Status(gomock.Any(), userID).Return(&models.AccessResult{
		Decision: models.AccessAllow,
	}, nil)

	// Act
	rec, reached := runGate(t, mockAccessUC, userID)

	// Assert
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(TrialDaysHeader))
}

func TestGateMiddleware_BannerSetsHeader(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccessUC := mocks.NewMockAccessUC(ctrl)
	userID := uuid.New()
	mockAccessUC.EXPECT().Status(gomock.Any(), userID).Return(&models.AccessResult{
		Decision: models.AccessAllowWithBanner,
		DaysLeft: 3,
	}, nil)

	// Act
	rec, reached := runGate(t, mockAccessUC, userID)

	// Assert
	assert.True(t, reached)
	assert.Equal(t, "3", rec.Header().Get(TrialDaysHeader))
}

func TestGateMiddleware_BlockReturns402(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccessUC := mocks.NewMockAccessUC(ctrl)
	userID := uuid.New()
	mockAccessUC.EXPECT().Status(gomock.Any(), userID).Return(&models.AccessResult{
		Decision: models.AccessBlock,
	}, nil)

	// Act
	rec, reached := runGate(t, mockAccessUC, userID)

	// Assert
	assert.False(t, reached, "blocked requests never reach the handler")
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}
