package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from environment
// variables; defaults suit local development against the storefront dev server.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Catalog  CatalogConfig
	Env      string `env:"ENV" env-default:"local"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// BaseURL is the storefront address used to build the confirmation
	// redirect URL.
	BaseURL string `env:"BASE_URL" env-default:"http://localhost:5173"`
}

type ServerConfig struct {
	Host            string `env:"HOST" env-default:"0.0.0.0"`
	Port            string `env:"PORT" env-default:"3000"`
	ReadTimeout     int    `env:"READ_TIMEOUT" env-default:"15"`
	WriteTimeout    int    `env:"WRITE_TIMEOUT" env-default:"15"`
	ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" env-default:"30"`
}

type CORSConfig struct {
	// AllowedOrigins is the cross-origin allow-list for the storefront UI.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:5173,https://azubi-tmp.netlify.app"`
}

type CatalogConfig struct {
	// File optionally names a JSON catalog file loaded at startup instead of
	// the built-in product line.
	File string `env:"CATALOG_FILE"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin must be configured")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
