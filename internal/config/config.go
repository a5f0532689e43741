// Package config loads process configuration from environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the layer needs at startup. Defaults suit
// a single-device install; production deployments override the
// session secret.
type Config struct {
	// DBPath is the SQLite database file backing the store.
	DBPath string `env:"BERMAN_DB_PATH" envDefault:"./data/berman.db"`

	// TaskRetention is how long completed tasks stay visible.
	TaskRetention time.Duration `env:"BERMAN_TASK_RETENTION" envDefault:"30m"`

	// SessionSecret signs login session tokens.
	SessionSecret string `env:"BERMAN_SESSION_SECRET" envDefault:"dev-session-secret"`

	// SessionTTL is how long a session token stays valid.
	SessionTTL time.Duration `env:"BERMAN_SESSION_TTL" envDefault:"24h"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
