package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"unicode"
)

const (
	// EnvMetricsEnabled overrides the metrics enabled flag.
	EnvMetricsEnabled = "METRICS_ENABLED"

	// EnvMetricsPath overrides the metrics endpoint path.
	EnvMetricsPath = "METRICS_PATH"
)

// reservedPaths are served by the operational and API routes. The metrics
// endpoint may not equal or nest under any of them.
var reservedPaths = []string{"/healthz", "/readyz", "/api", "/dist"}

// MetricsConfig contains Prometheus endpoint configuration.
// Enabled is a pointer so an overlay can switch metrics off explicitly.
type MetricsConfig struct {
	Enabled *bool  `toml:"enabled"`
	Path    string `toml:"path"`
}

// IsEnabled reports whether the metrics endpoint should be served.
func (c *MetricsConfig) IsEnabled() bool {
	return c.Enabled != nil && *c.Enabled
}

// Finalize applies defaults, loads environment overrides, and validates the metrics configuration.
func (c *MetricsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *MetricsConfig) Merge(overlay *MetricsConfig) {
	if overlay.Enabled != nil {
		enabled := *overlay.Enabled
		c.Enabled = &enabled
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}

func (c *MetricsConfig) loadDefaults() {
	if c.Enabled == nil {
		enabled := true
		c.Enabled = &enabled
	}
	if c.Path == "" {
		c.Path = "/metrics"
	}
}

func (c *MetricsConfig) loadEnv() {
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = &enabled
		}
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Path = v
	}
}

func (c *MetricsConfig) validate() error {
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /: %s", c.Path)
	}
	if c.Path == "/" || path.Clean(c.Path) != c.Path {
		return fmt.Errorf("path must be a clean path without a trailing /: %s", c.Path)
	}
	if strings.ContainsAny(c.Path, "{}") || strings.ContainsFunc(c.Path, unicode.IsSpace) {
		return fmt.Errorf("path must not contain braces or whitespace: %q", c.Path)
	}
	for _, reserved := range reservedPaths {
		if c.Path == reserved || strings.HasPrefix(c.Path, reserved+"/") {
			return fmt.Errorf("path %s is reserved by %s", c.Path, reserved)
		}
	}
	return nil
}
