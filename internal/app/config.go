package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"kozeni/internal/log"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel string `env:"KOZENI_LOG_LEVEL" envDefault:"warn"` // debug, info, warn or error
}

// LoadConfig reads Config from the environment, applies a non-empty
// logLevel on top of it and validates the result.
func LoadConfig(logLevel string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
