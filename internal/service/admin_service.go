package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
	"github.com/Ghorpaderamdas/Hotel/internal/domain/models"
	"github.com/Ghorpaderamdas/Hotel/internal/domain/repository"
	domainService "github.com/Ghorpaderamdas/Hotel/internal/domain/service"
)

// AdminService covers account provisioning and profile reads. Provisioning
// runs out-of-band (startup seeding); the runtime auth flows never create
// accounts.
type AdminService struct {
	logger    *zap.Logger
	adminRepo repository.AdminRepository
	passwords domainService.PasswordService
}

func NewAdminService(logger *zap.Logger, adminRepo repository.AdminRepository, passwords domainService.PasswordService) *AdminService {
	return &AdminService{
		logger:    logger.Named("admin_service"),
		adminRepo: adminRepo,
		passwords: passwords,
	}
}

// CreateAdmin provisions a new admin account with a hashed password.
func (s *AdminService) CreateAdmin(ctx context.Context, username, email, password, fullName string) (*models.Admin, error) {
	if taken, err := s.adminRepo.ExistsByUsername(ctx, username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if taken {
		return nil, domainErrors.ErrUsernameExists
	}

	if taken, err := s.adminRepo.ExistsByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if taken {
		return nil, domainErrors.ErrEmailExists
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("admin account created", zap.String("username", username))
	return admin, nil
}

// GetProfile returns the public profile for the given username.
func (s *AdminService) GetProfile(ctx context.Context, username string) (*models.AdminProfile, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	profile := admin.ToProfile()
	return &profile, nil
}
