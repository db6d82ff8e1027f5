package main

import (
	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/infrastructure"
	"github.com/JaimeStill/storefront/internal/middleware"
)

// buildMiddleware creates the stack wrapped around the router. Recovery sits
// inside the logger and metrics so a recovered panic is recorded as a 500.
func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.RequestID())
	sys.Use(middleware.Logger(infra.Logger, cfg.Logging.RequestLevel()))
	if cfg.Metrics.IsEnabled() {
		sys.Use(infra.Metrics.Middleware())
	}
	sys.Use(middleware.Recovery(infra.Logger, infra.Metrics.PanicRecovered))
	sys.Use(middleware.TrimSlash())
	return sys
}
