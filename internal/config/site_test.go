package config_test

import (
	"testing"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/pkg/web"
)

func TestSiteConfig_Merge(t *testing.T) {
	base := &config.SiteConfig{Duplicates: web.DuplicatesReject}
	base.Merge(&config.SiteConfig{BasePath: "/shop"})

	if base.BasePath != "/shop" {
		t.Errorf("BasePath = %q, want %q", base.BasePath, "/shop")
	}
	if base.Duplicates != web.DuplicatesReject {
		t.Errorf("Duplicates = %q, want %q (should not change)", base.Duplicates, web.DuplicatesReject)
	}
}

func TestSiteConfig_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvSiteBasePath, "/shop")
	t.Setenv(config.EnvSiteDuplicates, "last_wins")

	cfg := &config.SiteConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.BasePath != "/shop" {
		t.Errorf("BasePath = %q, want %q", cfg.BasePath, "/shop")
	}
	if cfg.Duplicates != web.DuplicatesLastWins {
		t.Errorf("Duplicates = %q, want %q", cfg.Duplicates, web.DuplicatesLastWins)
	}
}

func TestSiteConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SiteConfig
		wantErr bool
	}{
		{"root", config.SiteConfig{}, false},
		{"single segment", config.SiteConfig{BasePath: "/shop"}, false},
		{"no leading slash", config.SiteConfig{BasePath: "shop"}, true},
		{"trailing slash", config.SiteConfig{BasePath: "/shop/"}, true},
		{"slash only", config.SiteConfig{BasePath: "/"}, true},
		{"multi segment", config.SiteConfig{BasePath: "/shop/v1"}, true},
		{"reserved healthz", config.SiteConfig{BasePath: "/healthz"}, true},
		{"reserved api", config.SiteConfig{BasePath: "/api"}, true},
		{"unknown policy", config.SiteConfig{Duplicates: "first_wins"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Finalize()
			if (err != nil) != tt.wantErr {
				t.Errorf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
