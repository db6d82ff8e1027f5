package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/storefront/internal/api"
	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/infrastructure"
	"github.com/JaimeStill/storefront/internal/lifecycle"
	"github.com/JaimeStill/storefront/pkg/openapi"
	"github.com/JaimeStill/storefront/pkg/routes"
	"github.com/JaimeStill/storefront/pkg/web"
	"github.com/JaimeStill/storefront/web/storefront"
)

const openAPIPath = "/api/openapi.json"

// buildRouter assembles the operational endpoints, the route API and the
// storefront mounted under the configured base path.
func buildRouter(infra *infrastructure.Infrastructure, site *storefront.Handler, cfg *config.Config) (*web.Router, error) {
	pages, err := site.Router()
	if err != nil {
		return nil, err
	}

	r := web.NewRouter()
	r.SetFallback(site.NotFound())

	groups := []routes.Group{
		infraRoutes(infra.Lifecycle),
		api.New(site.Table(), infra.Logger).Routes(),
	}
	if cfg.Metrics.IsEnabled() {
		groups = append(groups, metricsRoutes(cfg.Metrics.Path, infra.Metrics.Handler()))
	}

	if err := routes.Register(r, groups...); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	spec, err := buildSpec(groups...)
	if err != nil {
		return nil, err
	}
	if err := r.Register("GET "+openAPIPath, serveOpenAPISpec(spec)); err != nil {
		return nil, fmt.Errorf("register openapi: %w", err)
	}

	if err := r.Mount(cfg.Site.BasePath, pages); err != nil {
		return nil, fmt.Errorf("mount storefront: %w", err)
	}

	return r, nil
}

func infraRoutes(ready lifecycle.ReadinessChecker) routes.Group {
	return routes.Group{
		Tags:        []string{"Infrastructure"},
		Description: "Infrastructure",
		Routes: []routes.Route{
			{
				Method:  http.MethodGet,
				Pattern: "/healthz",
				Handler: handleHealthCheck,
				OpenAPI: &openapi.Operation{
					Summary: "Health check endpoint",
					Responses: map[int]*openapi.Response{
						200: openapi.Text("Service is healthy"),
					},
				},
			},
			{
				Method:  http.MethodGet,
				Pattern: "/readyz",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					handleReadinessCheck(w, ready)
				},
				OpenAPI: &openapi.Operation{
					Summary: "Readiness check endpoint",
					Responses: map[int]*openapi.Response{
						200: openapi.Text("Service is ready"),
						503: openapi.Text("Service not ready"),
					},
				},
			},
		},
	}
}

func metricsRoutes(path string, h http.Handler) routes.Group {
	return routes.Group{
		Tags:        []string{"Infrastructure"},
		Description: "Prometheus metrics",
		Routes: []routes.Route{
			{
				Method:  http.MethodGet,
				Pattern: path,
				Handler: h.ServeHTTP,
				OpenAPI: &openapi.Operation{
					Summary: "Prometheus metrics in text exposition format",
					Responses: map[int]*openapi.Response{
						200: openapi.Text("Current metric values"),
					},
				},
			},
		},
	}
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
