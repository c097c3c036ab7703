package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
	"github.com/Ghorpaderamdas/Hotel/internal/domain/models"
	"github.com/Ghorpaderamdas/Hotel/internal/utils/metrics"
)

// Login authenticates an admin by username and password and issues a session
// token. Unknown username and wrong password both return
// ErrInvalidCredentials with no distinguishing signal.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAdminNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	// A verification error means the stored digest is unreadable. That is an
	// operational fault, not a wrong password; it must not render as a 401.
	match, err := s.passwords.CheckPasswordHash(password, admin.PasswordHash)
	if err != nil {
		s.logger.Error("password verification failed", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, domainErrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(admin.ID.String(), admin.Username, admin.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	// Best effort: a failed timestamp update must not fail the login.
	loginAt := s.now()
	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID, loginAt); err != nil {
		s.logger.Warn("failed to update last login", zap.String("admin_id", admin.ID.String()), zap.Error(err))
	} else {
		admin.LastLogin = &loginAt
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info("admin logged in", zap.String("username", admin.Username))

	return &models.LoginResponse{
		Token:   token,
		Profile: admin.ToProfile(),
	}, nil
}
