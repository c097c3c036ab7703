package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ghorpaderamdas/Hotel/internal/domain/models"
)

// AdminRepository is the persistence boundary for admin accounts.
// All durable state of the credential subsystem lives behind it.
type AdminRepository interface {
	// Create persists a new admin account. Used by provisioning only,
	// never by the runtime authentication flows.
	// Returns domain ErrUsernameExists / ErrEmailExists on unique
	// constraint violations.
	Create(ctx context.Context, admin *models.Admin) error

	// FindByUsername returns the account for the given username or
	// domain ErrAdminNotFound.
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)

	// FindByEmail returns the account for the given email or
	// domain ErrAdminNotFound.
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)

	// FindByResetToken returns the account currently holding the given
	// reset token or domain ErrAdminNotFound. Expiry is not checked here.
	FindByResetToken(ctx context.Context, token string) (*models.Admin, error)

	// UpdateLastLogin records a successful authentication timestamp.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// SetResetToken stores a pending reset token and its expiry for the
	// account with the given email, replacing any prior pending token.
	SetResetToken(ctx context.Context, email string, token string, expiry time.Time) error

	// ConsumeResetToken atomically sets the password hash and clears the
	// reset token fields in a single conditional update keyed on the
	// token still matching and not being expired. It returns the number
	// of rows affected: 0 means the token was unknown, expired or already
	// consumed by a concurrent request.
	ConsumeResetToken(ctx context.Context, token string, newHash string) (int64, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
