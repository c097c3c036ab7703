package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents the single administrative account record. PasswordHash is
// an opaque argon2id digest; the plaintext is never stored or logged.
// ResetToken and ResetTokenExpiry are both nil or both set: they exist only
// while a password reset is pending and are cleared in the same statement
// that writes the new hash.
type Admin struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	Username         string     `json:"username" db:"username"`
	Email            string     `json:"email" db:"email"`
	PasswordHash     string     `json:"-" db:"password_hash"`
	FullName         string     `json:"full_name" db:"full_name"`
	Role             Role       `json:"role" db:"role"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	LastLogin        *time.Time `json:"last_login,omitempty" db:"last_login"`
	ResetToken       *string    `json:"-" db:"reset_token"`
	ResetTokenExpiry *time.Time `json:"-" db:"reset_token_expiry"`
}

// Role is modeled as an extensible enum even though only ADMIN exists today.
type Role string

const (
	RoleAdmin Role = "ADMIN"
)

// AdminProfile is the public projection of an Admin returned by the API.
// It never carries the password hash or a pending reset token.
type AdminProfile struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      Role       `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// ToProfile strips the credential fields from an Admin.
func (a *Admin) ToProfile() AdminProfile {
	return AdminProfile{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FullName:  a.FullName,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		LastLogin: a.LastLogin,
	}
}

// HasPendingReset reports whether a reset token is currently stored,
// regardless of expiry.
func (a *Admin) HasPendingReset() bool {
	return a.ResetToken != nil && a.ResetTokenExpiry != nil
}
