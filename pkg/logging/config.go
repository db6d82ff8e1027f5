package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

const (
	// EnvLevel overrides the minimum record level.
	EnvLevel = "LOGGING_LEVEL"

	// EnvFormat overrides the output format.
	EnvFormat = "LOGGING_FORMAT"

	// EnvSource toggles call-site attribution.
	EnvSource = "LOGGING_SOURCE"

	// EnvRequests overrides the access log level for successful requests.
	EnvRequests = "LOGGING_REQUESTS"
)

// Config holds logging settings for the storefront server and CLI.
type Config struct {
	// Level is the minimum level written.
	// Default: "info"
	Level Level `toml:"level"`

	// Format selects the text or JSON handler.
	// Default: "text"
	Format Format `toml:"format"`

	// Source adds the file and line of the logging call to each record.
	// Default: false
	Source bool `toml:"source"`

	// Requests is the level of access log records for requests that did not
	// fail. Client and server errors keep WARN and ERROR.
	// Default: "info"
	Requests Level `toml:"requests"`
}

// Finalize applies defaults, reads the LOGGING_* environment overrides and
// validates the result.
func (c *Config) Finalize() error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.validate()
}

// Merge applies set values from an overlay. Source can only be switched on
// by an overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Source {
		c.Source = true
	}
	if overlay.Requests != "" {
		c.Requests = overlay.Requests
	}
}

// RequestLevel returns the slog level for successful request records.
func (c *Config) RequestLevel() slog.Level {
	return c.Requests.slog()
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Requests == "" {
		c.Requests = LevelInfo
	}
}

func (c *Config) loadEnv() error {
	if v := os.Getenv(EnvLevel); v != "" {
		c.Level = Level(v)
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = Format(v)
	}
	if v := os.Getenv(EnvSource); v != "" {
		source, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", EnvSource, v)
		}
		c.Source = source
	}
	if v := os.Getenv(EnvRequests); v != "" {
		c.Requests = Level(v)
	}
	return nil
}

func (c *Config) validate() error {
	if err := c.Level.validate(); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if err := c.Format.validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := c.Requests.validate(); err != nil {
		return fmt.Errorf("requests: %w", err)
	}
	return nil
}
