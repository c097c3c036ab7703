package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
	"github.com/Ghorpaderamdas/Hotel/internal/utils/metrics"
)

// resetTokenBytes gives 256 bits of entropy, far beyond what is guessable
// within the one-hour expiry window.
const resetTokenBytes = 32

func generateResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reset token entropy: %w", err)
	}
	// URL-safe: the raw token travels as a query parameter in the link.
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// RequestPasswordReset starts the reset flow for the account registered
// under email. The outcome is a generic ack whether or not the account
// exists; only a delivery failure is surfaced, since the operator needs to
// know mail is broken. A stored token survives a failed delivery so the
// admin can ask again without invalidating anything.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	metrics.PasswordResetRequestsTotal.Inc()

	// The token is generated before the account lookup so the unknown-email
	// path performs the same work as the known one.
	token, err := generateResetToken()
	if err != nil {
		return err
	}

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAdminNotFound) {
			// Same ack as the success path: no account enumeration.
			s.logger.Info("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up admin by email: %w", err)
	}

	expiry := s.now().Add(s.resetTTL)

	// Overwrites any prior pending token; only one reset can be pending
	// per account.
	if err := s.adminRepo.SetResetToken(ctx, admin.Email, token, expiry); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := s.resetBaseURL + "?token=" + url.QueryEscape(token)
	if err := s.notifier.SendPasswordResetEmail(ctx, admin.Email, link); err != nil {
		// The token stays valid; the operator can regenerate the mail.
		return err
	}

	s.logger.Info("password reset requested", zap.String("admin_id", admin.ID.String()))
	return nil
}

// ValidateResetToken reports whether token is currently redeemable: it must
// be stored on some account and its expiry must be strictly in the future.
// Unknown and expired tokens are indistinguishable to the caller.
func (s *AuthService) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	admin, err := s.adminRepo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAdminNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up reset token: %w", err)
	}
	if !admin.HasPendingReset() {
		return false, nil
	}
	return admin.ResetTokenExpiry.After(s.now()), nil
}

// CompletePasswordReset redeems token for a password change. The
// validate-and-clear step is a single conditional update in the store; when
// two requests race on the same token, exactly one observes an affected row
// and the other fails with ErrResetTokenInvalid.
func (s *AuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		metrics.ResetTokenConsumptionsTotal.WithLabelValues("invalid").Inc()
		return domainErrors.ErrResetTokenInvalid
	}

	newHash, err := s.passwords.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	affected, err := s.adminRepo.ConsumeResetToken(ctx, token, newHash)
	if err != nil {
		return fmt.Errorf("failed to consume reset token: %w", err)
	}
	if affected == 0 {
		metrics.ResetTokenConsumptionsTotal.WithLabelValues("invalid").Inc()
		return domainErrors.ErrResetTokenInvalid
	}

	metrics.ResetTokenConsumptionsTotal.WithLabelValues("success").Inc()
	s.logger.Info("password reset completed")
	return nil
}
