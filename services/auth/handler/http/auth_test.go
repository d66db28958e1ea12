package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/superblog/auth/internal/pkg/apperrors"
	"github.com/superblog/auth/internal/pkg/models"
	"github.com/superblog/auth/services/auth/mocks"
)

func handlerTestConfig() *models.Config {
	return &models.Config{
		Session: models.SessionConfig{
			CookieName: "sb_session",
			Secure:     true,
		},
	}
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestCode_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC, handlerTestConfig())

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/request", `{"email": "reader@example.com"}`)

	mockAuthUC.EXPECT().
		RequestCode(gomock.Any(), "reader@example.com").
		Return("", nil)

	// Act
	err := handler.RequestCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.NotContains(t, rec.Body.String(), "devCode", "code is not echoed outside dev mode")
}

func TestRequestCode_DevCodeEchoed(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC, handlerTestConfig())

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/request", `{"email": "reader@example.com"}`)

	mockAuthUC.EXPECT().
		RequestCode(gomock.Any(), "reader@example.com").
		Return("482913", nil)

	// Act
	err := handler.RequestCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "482913")
}

func TestRequestCode_InvalidEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC, handlerTestConfig())

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/request", `{"email": "nope"}`)

	mockAuthUC.EXPECT().
		RequestCode(gomock.Any(), "nope").
		Return("", apperrors.ErrValidation)

	// Act
	err := handler.RequestCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestCode_MissingEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAuthHandler(mocks.NewMockAuthUC(ctrl), handlerTestConfig())

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/request", `{}`)

	// Act
	err := handler.RequestCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyCode_SetsSessionCookie(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC, handlerTestConfig())

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/verify", `{"email": "reader@example.com", "code": "482913"}`)

	session := &models.AuthSession{
		Token:     "signed.jwt.token",
		UserID:    "user-123",
		Role:      "reader",
		ExpiresAt: time.Now().Add(72 * time.Hour).Unix(),
	}
	mockAuthUC.EXPECT().
		VerifyCode(gomock.Any(), "reader@example.com", "482913", gomock.Any()).
		Return(session, nil)

	// Act
	err := handler.VerifyCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "sb_session", cookie.Name)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestVerifyCode_GenericFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC, handlerTestConfig())

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/verify", `{"email": "reader@example.com", "code": "000000"}`)

	mockAuthUC.EXPECT().
		VerifyCode(gomock.Any(), "reader@example.com", "000000", gomock.Any()).
		Return(nil, apperrors.ErrAuthentication)

	// Act
	err := handler.VerifyCode(c)

	// Assert: one generic message for every auth failure, and no cookie
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), genericAuthError)
	assert.Empty(t, rec.Result().Cookies())
}

func TestVerifyCode_RateLimited(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockAuthUC, handlerTestConfig())

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/auth/verify", `{"email": "reader@example.com", "code": "111111"}`)

	mockAuthUC.EXPECT().
		VerifyCode(gomock.Any(), "reader@example.com", "111111", gomock.Any()).
		Return(nil, apperrors.ErrRateLimited)

	// Act
	err := handler.VerifyCode(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLogout_ClearsCookieAndIsIdempotent(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAuthHandler(mocks.NewMockAuthUC(ctrl), handlerTestConfig())
	e := echo.New()

	for i := 0; i < 2; i++ {
		c, rec := newJSONContext(e, http.MethodPost, "/api/auth/logout", "")

		// Act
		err := handler.Logout(c)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "sb_session", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Equal(t, -1, cookies[0].MaxAge)
	}
}

func TestMe_ReturnsSessionSubject(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAuthHandler(mocks.NewMockAuthUC(ctrl), handlerTestConfig())

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/api/auth/me", "")
	c.Set("user_id", "user-123")
	c.Set("email", "reader@example.com")
	c.Set("role", "reader")

	// Act
	err := handler.Me(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-123")
	assert.Contains(t, rec.Body.String(), "reader@example.com")
}
