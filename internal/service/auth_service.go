package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/Ghorpaderamdas/Hotel/internal/domain/repository"
	domainService "github.com/Ghorpaderamdas/Hotel/internal/domain/service"
)

// AuthService orchestrates login, session token verification and the
// password-reset flow. It is the only component that talks to the admin
// repository, the hasher, the token service and the notifier; it holds no
// mutable state of its own.
type AuthService struct {
	logger       *zap.Logger
	adminRepo    repository.AdminRepository
	passwords    domainService.PasswordService
	tokens       domainService.TokenService
	notifier     domainService.Notifier
	resetTTL     time.Duration
	resetBaseURL string
	now          func() time.Time
}

type AuthServiceConfig struct {
	ResetTokenTTL time.Duration
	ResetBaseURL  string
}

func NewAuthService(
	logger *zap.Logger,
	adminRepo repository.AdminRepository,
	passwords domainService.PasswordService,
	tokens domainService.TokenService,
	notifier domainService.Notifier,
	cfg AuthServiceConfig,
) *AuthService {
	resetTTL := cfg.ResetTokenTTL
	if resetTTL <= 0 {
		resetTTL = time.Hour
	}
	return &AuthService{
		logger:       logger.Named("auth_service"),
		adminRepo:    adminRepo,
		passwords:    passwords,
		tokens:       tokens,
		notifier:     notifier,
		resetTTL:     resetTTL,
		resetBaseURL: cfg.ResetBaseURL,
		now:          time.Now,
	}
}

// VerifySessionToken validates a bearer token and returns its claims. Used
// by the auth middleware on every protected route.
func (s *AuthService) VerifySessionToken(tokenString string) (*domainService.Claims, error) {
	return s.tokens.ValidateSessionToken(tokenString)
}
