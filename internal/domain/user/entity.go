package user

import (
	"time"

	"github.com/google/uuid"
)

// Role represents staff role (matches user_role enum)
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// Language represents display language preference
type Language string

const (
	LanguageEN Language = "EN"
	LanguageAR Language = "AR"
)

// User represents a staff account
type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	Language     Language  `db:"language"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// IsAdmin returns true if user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
