package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings read from the environment.
type Env struct {
	ConfigPath string        `env:"VECNA_CONFIG" envDefault:"vecna_config.yaml"`
	DBPath     string        `env:"VECNA_DB" envDefault:"vecna.db"`
	Address    string        `env:"VECNA_ADDR"`
	SessionTTL time.Duration `env:"VECNA_SESSION_TTL" envDefault:"30m"`
	// Seed fixes every encounter's RNG seed when non-zero.
	Seed int64 `env:"VECNA_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	if e.SessionTTL <= 0 {
		return Env{}, fmt.Errorf("VECNA_SESSION_TTL must be positive, got %s", e.SessionTTL)
	}
	return e, nil
}
