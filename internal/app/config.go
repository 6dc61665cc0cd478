package app

import "errors"

// Config holds everything an App instance needs to start.
type Config struct {
	ManifestPath string // directory searched recursively for .hcl contracts

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, errors.New("invalid LogFormat: must be 'text' or 'json'")
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid LogLevel: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}
