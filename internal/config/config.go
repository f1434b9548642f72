// Package config loads sortlist settings from the environment and item lists
// from YAML files.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from the environment. Command-line flags
// override these.
type Config struct {
	LogFile      string `env:"SORTLIST_LOG_FILE" envDefault:"sortlist.log"`
	Title        string `env:"SORTLIST_TITLE" envDefault:"Items"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"sortlist"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config for the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
