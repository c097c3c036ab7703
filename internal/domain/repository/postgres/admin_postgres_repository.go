package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
	"github.com/Ghorpaderamdas/Hotel/internal/domain/models"
	"github.com/Ghorpaderamdas/Hotel/internal/domain/repository"
)

// AdminRepositoryPostgres implements repository.AdminRepository on pgx.
type AdminRepositoryPostgres struct {
	pool *pgxpool.Pool
}

func NewAdminRepositoryPostgres(pool *pgxpool.Pool) *AdminRepositoryPostgres {
	return &AdminRepositoryPostgres{pool: pool}
}

const adminColumns = `id, username, email, password_hash, full_name, role,
       created_at, last_login, reset_token, reset_token_expiry`

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	admin := &models.Admin{}
	err := row.Scan(
		&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash,
		&admin.FullName, &admin.Role, &admin.CreatedAt, &admin.LastLogin,
		&admin.ResetToken, &admin.ResetTokenExpiry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to scan admin row: %w", err)
	}
	return admin, nil
}

// Create persists a new admin account.
func (r *AdminRepositoryPostgres) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (id, username, email, password_hash, full_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}

	_, err := r.pool.Exec(ctx, query,
		admin.ID, admin.Username, admin.Email, admin.PasswordHash,
		admin.FullName, admin.Role, admin.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			if strings.Contains(pgErr.ConstraintName, "admins_email") {
				return domainErrors.ErrEmailExists
			}
			if strings.Contains(pgErr.ConstraintName, "admins_username") {
				return domainErrors.ErrUsernameExists
			}
			return fmt.Errorf("unique constraint %s violated: %w", pgErr.ConstraintName, domainErrors.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *AdminRepositoryPostgres) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE username = $1`
	return scanAdmin(r.pool.QueryRow(ctx, query, username))
}

func (r *AdminRepositoryPostgres) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`
	return scanAdmin(r.pool.QueryRow(ctx, query, email))
}

func (r *AdminRepositoryPostgres) FindByResetToken(ctx context.Context, token string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE reset_token = $1`
	return scanAdmin(r.pool.QueryRow(ctx, query, token))
}

// UpdateLastLogin records a successful authentication. Callers treat a
// failure here as non-fatal.
func (r *AdminRepositoryPostgres) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE admins SET last_login = $2 WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrAdminNotFound
	}
	return nil
}

// SetResetToken stores a pending reset token for the account with the given
// email. Writing over the previous value is what enforces the one-pending-
// reset-per-account rule: the superseded token simply no longer matches.
func (r *AdminRepositoryPostgres) SetResetToken(ctx context.Context, email string, token string, expiry time.Time) error {
	query := `UPDATE admins SET reset_token = $2, reset_token_expiry = $3 WHERE email = $1`
	result, err := r.pool.Exec(ctx, query, email, token, expiry)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrAdminNotFound
	}
	return nil
}

// ConsumeResetToken performs the validate-and-clear step as one conditional
// update. Two requests racing on the same token cannot both see a row: the
// loser's WHERE clause no longer matches and it observes zero rows affected.
func (r *AdminRepositoryPostgres) ConsumeResetToken(ctx context.Context, token string, newHash string) (int64, error) {
	query := `
		UPDATE admins
		SET password_hash = $2, reset_token = NULL, reset_token_expiry = NULL
		WHERE reset_token = $1 AND reset_token_expiry > NOW()
	`
	result, err := r.pool.Exec(ctx, query, token, newHash)
	if err != nil {
		return 0, fmt.Errorf("failed to consume reset token: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *AdminRepositoryPostgres) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return exists, nil
}

func (r *AdminRepositoryPostgres) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

var _ repository.AdminRepository = (*AdminRepositoryPostgres)(nil)
