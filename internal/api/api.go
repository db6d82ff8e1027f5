// Package api serves a read-only JSON view of the storefront route table.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/storefront/pkg/handlers"
	"github.com/JaimeStill/storefront/pkg/routes"
	"github.com/JaimeStill/storefront/pkg/web"
)

// RouteInfo describes one entry of the route table.
type RouteInfo struct {
	Path     string `json:"path" yaml:"path"`
	View     string `json:"view" yaml:"view"`
	Template string `json:"template" yaml:"template"`
	Pattern  string `json:"pattern" yaml:"pattern"`
}

// Resolution is the result of resolving a path against the route table.
type Resolution struct {
	Path    string            `json:"path" yaml:"path"`
	View    string            `json:"view" yaml:"view"`
	Pattern string            `json:"pattern" yaml:"pattern"`
	Params  map[string]string `json:"params" yaml:"params"`
}

// Describe lists the table entries in registration order.
func Describe(table *web.Table) []RouteInfo {
	entries := table.Entries()
	patterns := table.Patterns()

	out := make([]RouteInfo, len(entries))
	for i, e := range entries {
		out[i] = RouteInfo{
			Path:     e.Path,
			View:     e.View.Name,
			Template: e.View.Template,
			Pattern:  patterns[i],
		}
	}
	return out
}

// NewResolution builds a Resolution for path from a table match.
func NewResolution(path string, m web.Match) Resolution {
	return Resolution{
		Path:    path,
		View:    m.Entry.View.Name,
		Pattern: m.Pattern,
		Params:  m.Params,
	}
}

// Handler serves the route introspection endpoints.
type Handler struct {
	table  *web.Table
	logger *slog.Logger
}

// New creates a Handler over table.
func New(table *web.Table, logger *slog.Logger) *Handler {
	return &Handler{
		table:  table,
		logger: logger.With("handler", "api"),
	}
}

// Routes returns the endpoint group mounted under /api/routes.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/routes",
		Tags:        []string{"Routes"},
		Description: "Route table introspection",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: http.MethodGet, Pattern: "/resolve", Handler: h.Resolve, OpenAPI: Spec.Resolve},
		},
	}
}

// List writes every route in table order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Describe(h.table))
}

// Resolve writes the view and parameters selected for the path query
// parameter.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: path query parameter is required", web.ErrInvalidPath))
		return
	}

	m, err := h.table.Resolve(path)
	if err != nil {
		handlers.RespondError(w, h.logger, statusFor(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NewResolution(path, m))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, web.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(err, web.ErrNoMatch):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
