package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
	"github.com/Ghorpaderamdas/Hotel/internal/domain/models"
	"github.com/Ghorpaderamdas/Hotel/internal/domain/service"
)

// JWTConfig configures the session token service. The secret is process-wide
// configuration injected at startup and immutable thereafter.
type JWTConfig struct {
	Secret          string
	Issuer          string
	SessionTokenTTL time.Duration
}

type jwtService struct {
	config JWTConfig
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a TokenService signing session tokens with HS256.
func NewJWTService(cfg JWTConfig) (service.TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret must be configured")
	}
	if cfg.SessionTokenTTL <= 0 {
		cfg.SessionTokenTTL = 24 * time.Hour
	}
	return &jwtService{config: cfg, secret: []byte(cfg.Secret), now: time.Now}, nil
}

// GenerateSessionToken signs a self-contained token binding the admin
// identity, role, issued-at and expiry.
func (s *jwtService) GenerateSessionToken(adminID string, username string, role models.Role) (string, error) {
	now := s.now()

	claims := &service.Claims{
		AdminID:  adminID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminID,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.SessionTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateSessionToken verifies signature, structure and expiry against the
// server-held secret. The failure reasons stay distinct for logging; callers
// render them all as one generic outcome to the end user.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrTokenMalformed, err)
		default:
			// Covers signature mismatch and not-yet-valid tokens.
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrTokenInvalid, err)
		}
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, domainErrors.ErrTokenInvalid
	}
	if s.config.Issuer != "" && claims.Issuer != s.config.Issuer {
		return nil, fmt.Errorf("%w: unexpected issuer", domainErrors.ErrTokenInvalid)
	}
	return claims, nil
}

var _ service.TokenService = (*jwtService)(nil)
