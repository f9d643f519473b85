package config

import "time"

// Default values applied to unset fields.
const (
	DefaultServerPort        = 8080
	DefaultServerMode        = "release"
	DefaultReadTimeout       = 10 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultShutdownTimeout   = 15 * time.Second
	DefaultMetricsPath       = "/metrics"
	DefaultMaxSequenceLength = 2000
	DefaultMaxCrossLinks     = 64
)

// ApplyDefaults fills every zero-valued field with its default.  Explicitly
// configured values are never overwritten.
func ApplyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.Mode == "" {
		c.Server.Mode = DefaultServerMode
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if len(c.Log.OutputPaths) == 0 {
		c.Log.OutputPaths = []string{"stdout"}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Convert.MaxSequenceLength == 0 {
		c.Convert.MaxSequenceLength = DefaultMaxSequenceLength
	}
	if c.Convert.MaxCrossLinks == 0 {
		c.Convert.MaxCrossLinks = DefaultMaxCrossLinks
	}
}

// NewDefault returns a Config populated entirely from defaults, with metrics
// enabled.  Used by tests and by the CLI when no config file is given.
func NewDefault() *Config {
	c := &Config{}
	c.Metrics.Enabled = true
	ApplyDefaults(c)
	return c
}
