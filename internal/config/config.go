package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds service configuration loaded from environment variables
type Config struct {
	Host string `env:"BANGATE_HOST"`
	Port int    `env:"BANGATE_PORT" envDefault:"8080"`

	// DBPath is the SQLite database path. Empty selects the in-memory
	// store, which does not survive restarts.
	DBPath string `env:"BANGATE_DB_PATH" envDefault:"bangate.db"`

	// CacheType selects the verdict cache backend ("memory" or "redis")
	CacheType string `env:"BANGATE_CACHE" envDefault:"memory"`
	// RedisURL is required when CacheType is "redis"
	RedisURL string `env:"BANGATE_REDIS_URL"`

	// AdminTokenHash is the bcrypt hash of the admin bearer token.
	// Empty disables the admin endpoints.
	AdminTokenHash string `env:"BANGATE_ADMIN_TOKEN_HASH"`
}

// Load parses configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
