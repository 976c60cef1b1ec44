package user

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an account with access to the admin console. The site
// has no reader accounts; only editors authenticate.
type AdminUser struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FullName     string     `json:"full_name" db:"full_name"`
	Role         string     `json:"role" db:"role"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// RoleAdmin is the only role today; the column exists so finer roles
// can be added without a migration
const RoleAdmin = "admin"
