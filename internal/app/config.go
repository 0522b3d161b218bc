package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Address string // dotted-quad IPv4 address to cloak
	Prefix  string // emitted before every rendered line
	Postfix string // emitted after every rendered line

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg, applies logging defaults, and returns the
// finished configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Address == "" {
		return nil, errors.New("Address is a required configuration field and cannot be empty")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
