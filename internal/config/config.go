// Package config provides configuration loading using koanf.
// Precedence: environment variables over compiled defaults.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/aelexs/greeter-service/internal/domain"
)

// Config holds all service configuration.
type Config struct {
	// Environment identifier: "local", "dev", "prod"
	Environment string `koanf:"environment"`

	// Logging configuration
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Port is the HTTP listen port, resolved from PORT.
	// Loaded separately so an unparseable value falls back to the
	// default instead of failing startup.
	Port int `koanf:"-"`

	// OpenTelemetry configuration
	OTELEndpoint    string `koanf:"otel_endpoint"` // Empty disables OTLP export
	OTELServiceName string `koanf:"otel_service_name"`
}

// defaults returns a Config with compiled default values.
func defaults() *Config {
	return &Config{
		Environment:     "local",
		LogLevel:        "info",
		LogFormat:       "json",
		Port:            domain.DefaultPort,
		OTELServiceName: "greeter",
	}
}

// Load loads configuration following the precedence:
// 1. Environment variables (highest)
// 2. Compiled defaults (lowest)
//
// PORT unset, empty, or unparseable resolves to domain.DefaultPort.
// A parseable but out-of-range PORT is a startup failure.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	// Start with compiled defaults
	cfg := defaults()

	// Load environment variables, keys lowercased (PORT -> "port").
	err := k.Load(env.Provider("", ".", strings.ToLower), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// Unmarshal into config struct
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Resolve the port. koanf's Int returns 0 for a missing or
	// unparseable value, which maps to the compiled default.
	if port := k.Int("port"); port != 0 {
		cfg.Port = port
	} else {
		cfg.Port = domain.DefaultPort
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that resolved configuration is usable.
func validate(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > domain.MaxPort {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPort, cfg.Port)
	}
	return nil
}

// IsLocal returns true if running in local development environment.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}

// IsProd returns true if running in production environment.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
