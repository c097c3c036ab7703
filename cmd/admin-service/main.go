package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/Ghorpaderamdas/Hotel/internal/config"
	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
	repoPostgres "github.com/Ghorpaderamdas/Hotel/internal/domain/repository/postgres"
	httpHandler "github.com/Ghorpaderamdas/Hotel/internal/handler/http"
	infraPostgres "github.com/Ghorpaderamdas/Hotel/internal/infrastructure/database/postgres"
	"github.com/Ghorpaderamdas/Hotel/internal/infrastructure/notifier"
	"github.com/Ghorpaderamdas/Hotel/internal/infrastructure/security"
	"github.com/Ghorpaderamdas/Hotel/internal/service"
	"github.com/Ghorpaderamdas/Hotel/internal/utils/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if cfg.Database.AutoMigrate {
		log.Info("running database migrations")
		migrationURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.Database.User, cfg.Database.Password, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.DBName, cfg.Database.SSLMode)
		m, err := migrate.New("file://migrations", migrationURL)
		if err != nil {
			log.Fatal("failed to create migration instance", zap.Error(err))
		}
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	ctx := context.Background()
	dbPool, err := infraPostgres.NewDBPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to initialize postgres connection pool", zap.Error(err))
	}
	defer dbPool.Close()

	adminRepo := repoPostgres.NewAdminRepositoryPostgres(dbPool)

	passwordService, err := security.NewArgon2idPasswordService(security.Argon2idParams{
		Memory:      cfg.PasswordHash.Memory,
		Iterations:  cfg.PasswordHash.Iterations,
		Parallelism: cfg.PasswordHash.Parallelism,
		SaltLength:  cfg.PasswordHash.SaltLength,
		KeyLength:   cfg.PasswordHash.KeyLength,
	})
	if err != nil {
		log.Fatal("failed to initialize password service", zap.Error(err))
	}

	tokenService, err := security.NewJWTService(security.JWTConfig{
		Secret:          cfg.JWT.Secret,
		Issuer:          cfg.JWT.Issuer,
		SessionTokenTTL: cfg.JWT.SessionTokenTTL,
	})
	if err != nil {
		log.Fatal("failed to initialize token service", zap.Error(err))
	}

	emailNotifier := notifier.NewEmailNotifier(cfg.SMTP, log)

	authService := service.NewAuthService(log, adminRepo, passwordService, tokenService, emailNotifier, service.AuthServiceConfig{
		ResetTokenTTL: cfg.Reset.TokenTTL,
		ResetBaseURL:  cfg.Reset.BaseURL,
	})
	adminService := service.NewAdminService(log, adminRepo, passwordService)

	if cfg.Seed.Enabled {
		seedAdmin(ctx, log, adminService, cfg.Seed)
	}

	router := httpHandler.NewRouter(log, cfg, authService, adminService)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("http server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// seedAdmin provisions the configured admin account if it does not exist
// yet. Conflicts are expected on every restart after the first.
func seedAdmin(ctx context.Context, log *zap.Logger, adminService *service.AdminService, seed config.SeedConfig) {
	_, err := adminService.CreateAdmin(ctx, seed.Username, seed.Email, seed.Password, seed.FullName)
	if err != nil {
		if domainErrors.IsConflict(err) {
			log.Debug("seed admin already exists", zap.String("username", seed.Username))
			return
		}
		log.Error("failed to seed admin account", zap.Error(err))
		return
	}
	log.Info("seed admin account created", zap.String("username", seed.Username))
}
