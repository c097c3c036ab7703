package service

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/Ghorpaderamdas/Hotel/internal/domain/models"
)

// Claims is the identity asserted by a session token. It carries only what
// downstream checks need and is deliberately decoupled from the Admin entity.
type Claims struct {
	AdminID  string      `json:"admin_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, self-contained session tokens.
// Verification is pure: no store lookup, no revocation list.
type TokenService interface {
	// GenerateSessionToken signs a token binding the admin identity and
	// role with an expiry a fixed duration from now.
	GenerateSessionToken(adminID string, username string, role models.Role) (string, error)

	// ValidateSessionToken checks the signature, structure and expiry of a
	// token and returns its claims. Failures map to the domain token
	// errors (malformed, expired, invalid).
	ValidateSessionToken(tokenString string) (*Claims, error)
}
