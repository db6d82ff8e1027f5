package main

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/infrastructure"
	"github.com/JaimeStill/storefront/internal/server"
	"github.com/JaimeStill/storefront/pkg/web"
	"github.com/JaimeStill/storefront/web/storefront"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	site    *storefront.Handler
	handler http.Handler
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config, out io.Writer) (*Server, error) {
	infra := infrastructure.New(cfg, out)

	site, err := storefront.NewHandler(cfg.Site.BasePath, cfg.Site.Duplicates, infra.Logger, infra.Metrics)
	if err != nil {
		return nil, err
	}
	infra.Metrics.SetRoutes(site.Table().Len())

	router, err := buildRouter(infra, site, cfg)
	if err != nil {
		return nil, err
	}
	handler := buildMiddleware(infra, cfg).Apply(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"routes", site.Table().Len(),
		"base_path", cfg.Site.BasePath,
	)

	return &Server{
		infra:   infra,
		site:    site,
		handler: handler,
		http:    server.New(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the address the HTTP server is bound to.
func (s *Server) Addr() string {
	return s.http.Addr()
}

// Ready reports whether startup has completed.
func (s *Server) Ready() bool {
	return s.infra.Lifecycle.Ready()
}

// Start begins all subsystems and returns once the listener is bound.
// Readiness flips once the route table self-check completes.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	s.infra.Lifecycle.OnStartup(s.checkRoutes)

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}

// checkRoutes resolves every literal entry and warns when the table selects
// a different view than the one it was registered with.
func (s *Server) checkRoutes() {
	table := s.site.Table()
	for _, e := range table.Entries() {
		if strings.Contains(e.Path, ":") {
			continue
		}

		m, err := table.Resolve(e.Path)
		switch {
		case errors.Is(err, web.ErrNoMatch):
			s.infra.Logger.Warn("route does not resolve", "path", e.Path)
		case err != nil:
			s.infra.Logger.Warn("route check failed", "path", e.Path, "error", err)
		case m.Entry.View != e.View:
			s.infra.Logger.Warn("route shadowed", "path", e.Path, "view", e.View.Name, "resolved", m.Entry.View.Name)
		}
	}
	s.infra.Logger.Debug("route table checked", "routes", table.Len())
}
