// ABOUTME: Configuration loader for the BiMarket CLI
// ABOUTME: Maps environment variables into a typed struct with defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the CLI.
type Config struct {
	// APIURL is the base URL of the BiMarket backend.
	APIURL string `env:"BIMARKET_API_URL" envDefault:"http://localhost:8000/api"`

	// ConfigDir overrides where credentials and logs are stored.
	// Empty means the XDG default is used.
	ConfigDir string `env:"BIMARKET_CONFIG_DIR"`

	// LogLevel controls debug log verbosity: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DebugLog enables the file-backed debug log.
	DebugLog bool `env:"BIMARKET_DEBUG_LOG" envDefault:"false"`
}

// Load reads an optional .env file and parses environment variables.
func Load() (*Config, error) {
	// .env is a development convenience; missing file is fine
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = DefaultConfigDir()
	}
	return cfg, nil
}

// DefaultConfigDir returns the default config directory following XDG spec.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bimarket")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "bimarket")
}
