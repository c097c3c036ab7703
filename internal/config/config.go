package config

import (
	"time"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	PasswordHash PasswordHashConfig `mapstructure:"password_hash"`
	Reset        ResetConfig        `mapstructure:"reset"`
	SMTP         SMTPConfig         `mapstructure:"smtp"`
	Seed         SeedConfig         `mapstructure:"seed"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	CORS         CORSConfig         `mapstructure:"cors"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	User        string        `mapstructure:"user"`
	Password    string        `mapstructure:"password"`
	DBName      string        `mapstructure:"dbname"`
	SSLMode     string        `mapstructure:"sslmode"`
	MaxConns    int           `mapstructure:"max_conns"`
	MinConns    int           `mapstructure:"min_conns"`
	ConnMaxLife time.Duration `mapstructure:"conn_max_life"`
	AutoMigrate bool          `mapstructure:"auto_migrate"`
}

// JWTConfig holds the signing secret and lifetime for session tokens.
// The secret is loaded once at startup and passed explicitly into the
// token service; nothing reads it afterwards.
type JWTConfig struct {
	Secret          string        `mapstructure:"secret"`
	Issuer          string        `mapstructure:"issuer"`
	SessionTokenTTL time.Duration `mapstructure:"session_token_ttl"`
}

type PasswordHashConfig struct {
	Memory      uint32 `mapstructure:"memory"`
	Iterations  uint32 `mapstructure:"iterations"`
	Parallelism uint8  `mapstructure:"parallelism"`
	SaltLength  uint32 `mapstructure:"salt_length"`
	KeyLength   uint32 `mapstructure:"key_length"`
}

// ResetConfig controls the password-reset token lifecycle. BaseURL is the
// front-end page the emailed link points at; the raw token is appended as a
// query parameter, so it must stay URL-safe.
type ResetConfig struct {
	TokenTTL time.Duration `mapstructure:"token_ttl"`
	BaseURL  string        `mapstructure:"base_url"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// SeedConfig describes the admin account provisioned at startup when it does
// not exist yet. Accounts are never created through the API.
type SeedConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	FullName string `mapstructure:"full_name"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
