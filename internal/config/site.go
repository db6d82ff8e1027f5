package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/JaimeStill/storefront/pkg/web"
)

const (
	// EnvSiteBasePath overrides the path prefix the storefront is served under.
	EnvSiteBasePath = "SITE_BASE_PATH"

	// EnvSiteDuplicates overrides the duplicate route policy.
	EnvSiteDuplicates = "SITE_DUPLICATES"
)

// SiteConfig contains storefront configuration.
type SiteConfig struct {
	// BasePath is an optional single path prefix such as "/shop".
	// Default: "" (served at the root)
	BasePath string `toml:"base_path"`

	// Duplicates decides how conflicting route registrations are handled.
	// Default: "reject"
	Duplicates web.DuplicatePolicy `toml:"duplicates"`
}

// Finalize applies defaults, loads environment overrides, and validates the site configuration.
func (c *SiteConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *SiteConfig) Merge(overlay *SiteConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Duplicates != "" {
		c.Duplicates = overlay.Duplicates
	}
}

func (c *SiteConfig) loadDefaults() {
	if c.Duplicates == "" {
		c.Duplicates = web.DuplicatesReject
	}
}

func (c *SiteConfig) loadEnv() {
	if v, ok := os.LookupEnv(EnvSiteBasePath); ok {
		c.BasePath = v
	}
	if v := os.Getenv(EnvSiteDuplicates); v != "" {
		c.Duplicates = web.DuplicatePolicy(v)
	}
}

func (c *SiteConfig) validate() error {
	if c.BasePath != "" {
		if !strings.HasPrefix(c.BasePath, "/") {
			return fmt.Errorf("base_path must start with /: %s", c.BasePath)
		}
		if c.BasePath == "/" || strings.HasSuffix(c.BasePath, "/") {
			return fmt.Errorf("base_path must not end with /: %s", c.BasePath)
		}
		if strings.Contains(c.BasePath[1:], "/") {
			return fmt.Errorf("base_path must be a single path segment: %s", c.BasePath)
		}
		if slices.Contains(reservedPaths, c.BasePath) {
			return fmt.Errorf("base_path %s is reserved", c.BasePath)
		}
	}
	return c.Duplicates.Validate()
}
