package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization roles a user can hold.
type Role string

const (
	// RoleUser is the least-privileged role, assigned on registration.
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the enumerated roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// User models an authenticated actor. The password hash never crosses the
// API boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
