package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoadConfig reads configuration from a YAML file selected by APP_ENV (or an
// explicit CONFIG_PATH) and overlays ADMIN_-prefixed environment variables.
func LoadConfig() (*Config, error) {
	setDefaults()

	env := strings.ToLower(os.Getenv("APP_ENV"))
	if env == "" {
		env = "development"
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(fmt.Sprintf("config.%s", env))
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/admin-service")
	}

	viper.SetEnvPrefix("ADMIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing file is fine, environment variables still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret must be configured")
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("server.shutdown_timeout", 15*time.Second)

	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.auto_migrate", false)

	viper.SetDefault("jwt.issuer", "hotel-admin-service")
	viper.SetDefault("jwt.session_token_ttl", 24*time.Hour)

	viper.SetDefault("password_hash.memory", 64*1024)
	viper.SetDefault("password_hash.iterations", 3)
	viper.SetDefault("password_hash.parallelism", 2)
	viper.SetDefault("password_hash.salt_length", 16)
	viper.SetDefault("password_hash.key_length", 32)

	viper.SetDefault("reset.token_ttl", time.Hour)
	viper.SetDefault("reset.base_url", "http://localhost:3000/admin/reset-password")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
