package models

import (
	"time"

	"github.com/google/uuid"
)

// OtpChallenge represents a one-time code bound to an email address.
// The raw code never touches the database, only its SHA-256 hash.
type OtpChallenge struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CodeHash  string    `json:"-" db:"code_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Consumed  bool      `json:"consumed" db:"consumed"`
}

// RequestCodeRequest represents a request to start a passwordless login
type RequestCodeRequest struct {
	Email string `json:"email" validate:"required"`
}

// RequestCodeResponse is returned after a code request. DevCode is only
// populated when OTP dev mode is explicitly enabled.
type RequestCodeResponse struct {
	DevCode string `json:"devCode,omitempty"`
}

// VerifyCodeRequest represents a request to verify a one-time code
type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// AuthSession carries a freshly issued session token and its expiry
type AuthSession struct {
	Token     string `json:"-"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// OTPNotificationEvent is published to the notification sink so the email
// collaborator can deliver the code out-of-band.
type OTPNotificationEvent struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginEvent is published after a successful verification
type LoginEvent struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
