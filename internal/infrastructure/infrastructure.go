// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (lifecycle, logging, metrics) the
// storefront subsystems are built from.
package infrastructure

import (
	"io"
	"log/slog"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/lifecycle"
	"github.com/JaimeStill/storefront/internal/metrics"
	"github.com/JaimeStill/storefront/pkg/logging"
)

// Infrastructure holds the core systems required by the server.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

// New creates an Infrastructure from the application configuration.
// Log output goes to out, or stdout when out is nil.
func New(cfg *config.Config, out io.Writer) *Infrastructure {
	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging, out),
		Metrics:   metrics.New(),
	}
}
