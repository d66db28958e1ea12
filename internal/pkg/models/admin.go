package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles. Destructive actions require RoleSuperAdmin.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// AdminAccount represents an admin panel account. Accounts are created
// out-of-band; PasswordHash never leaves the server boundary.
type AdminAccount struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AuditLogEntry is an append-only record of an admin action. The repository
// exposes no update or delete path for these rows.
type AuditLogEntry struct {
	ID         uuid.UUID `json:"id" db:"id"`
	AdminID    uuid.UUID `json:"admin_id" db:"admin_id"`
	Action     string    `json:"action" db:"action"`
	Resource   string    `json:"resource" db:"resource"`
	ResourceID string    `json:"resource_id" db:"resource_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// AdminLoginRequest represents a form-encoded admin login submission
type AdminLoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}
