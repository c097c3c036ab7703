package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
	"github.com/Ghorpaderamdas/Hotel/internal/domain/models"
	"github.com/Ghorpaderamdas/Hotel/internal/service"
)

// AuthHandler exposes the credential and recovery endpoints.
type AuthHandler struct {
	logger      *zap.Logger
	authService *service.AuthService
}

func NewAuthHandler(logger *zap.Logger, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		logger:      logger.Named("auth_handler"),
		authService: authService,
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			RespondError(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	RespondSuccess(c, http.StatusOK, "Login successful", resp)
}

// ForgotPassword handles POST /auth/forgot-password. The response is the
// same ack whether or not the email belongs to an account; only mail
// delivery trouble is reported, as an operational error.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrDeliveryFailure) {
			h.logger.Error("reset email delivery failed", zap.Error(err))
			RespondError(c, http.StatusBadGateway, "Failed to send password reset email")
			return
		}
		h.logger.Error("password reset request failed", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Password reset request failed")
		return
	}

	RespondSuccess(c, http.StatusOK, "If the email is registered, a password reset link has been sent", nil)
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := h.authService.CompletePasswordReset(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		if errors.Is(err, domainErrors.ErrResetTokenInvalid) {
			RespondError(c, http.StatusBadRequest, "Invalid or expired reset token")
			return
		}
		h.logger.Error("password reset failed", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Password reset failed")
		return
	}

	RespondSuccess(c, http.StatusOK, "Password reset successfully", nil)
}

// ValidateResetToken handles GET /auth/validate-reset-token?token=...
func (h *AuthHandler) ValidateResetToken(c *gin.Context) {
	token := c.Query("token")

	valid, err := h.authService.ValidateResetToken(c.Request.Context(), token)
	if err != nil {
		h.logger.Error("reset token validation failed", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Token validation failed")
		return
	}

	RespondSuccess(c, http.StatusOK, "Token validation result", gin.H{"valid": valid})
}

// Logout handles POST /auth/logout. Session tokens are stateless, so logout
// is the client discarding its token; the endpoint exists for the console.
func (h *AuthHandler) Logout(c *gin.Context) {
	RespondSuccess(c, http.StatusOK, "Logout successful", nil)
}
