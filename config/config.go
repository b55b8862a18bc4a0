package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config is the runtime configuration of the self-play tool, read from the
// environment.
type Config struct {
	LogLevel       string `env:"CHECKERS_LOG_LEVEL" envDefault:"info"`
	LogJSON        bool   `env:"CHECKERS_LOG_JSON" envDefault:"false"`
	ExperimentFile string `env:"CHECKERS_EXPERIMENT_FILE"`
	OutputDir      string `env:"CHECKERS_OUTPUT_DIR" envDefault:"experiments"`
	ResultsDB      string `env:"CHECKERS_RESULTS_DB"`
	RedisURL       string `env:"CHECKERS_REDIS_URL"`
	MaxTurns       int    `env:"CHECKERS_MAX_TURNS" envDefault:"300"`
	Seed           uint64 `env:"CHECKERS_SEED" envDefault:"0"` // 0 picks a time based seed
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values env.Parse cannot.
func (c Config) Validate() error {
	if c.MaxTurns <= 0 {
		return fmt.Errorf("CHECKERS_MAX_TURNS must be positive, got %d", c.MaxTurns)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("CHECKERS_OUTPUT_DIR is required")
	}
	return nil
}

// Level is the parsed zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("CHECKERS_LOG_LEVEL: %w", err)
	}
	return level, nil
}
