// Package config defines the service configuration: plain data types with
// validation, loaded and watched by loader.go.  No I/O lives in config.go.
package config

import (
	"fmt"
	"time"

	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/logging"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// MetricsConfig controls the prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ConvertConfig bounds what a single conversion request may ask for.
type ConvertConfig struct {
	// MaxSequenceLength caps the residue count of one request.
	MaxSequenceLength int `mapstructure:"max_sequence_length"`

	// MaxCrossLinks caps the number of cross-link declarations.
	MaxCrossLinks int `mapstructure:"max_cross_links"`
}

// Config is the root configuration of the service.
type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	Log     logging.Config `mapstructure:"log"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
	Convert ConvertConfig  `mapstructure:"convert"`
}

// Validate checks cross-field consistency after defaults were applied.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode)
	}
	if c.Convert.MaxSequenceLength < 1 {
		return fmt.Errorf("convert.max_sequence_length must be positive")
	}
	if c.Convert.MaxCrossLinks < 0 {
		return fmt.Errorf("convert.max_cross_links must not be negative")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path required when metrics are enabled")
	}
	return nil
}
