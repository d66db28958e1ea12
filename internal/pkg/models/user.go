package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered reader identified by email
type User struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	TeamID      string     `json:"team_id" db:"team_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	IsActive    bool       `json:"is_active" db:"is_active"`
}
