// Package routes describes groups of HTTP routes and registers them on a
// web.Router.
package routes

import (
	"net/http"

	"github.com/JaimeStill/storefront/pkg/openapi"
	"github.com/JaimeStill/storefront/pkg/web"
)

// Route represents an HTTP route with method, pattern, and handler.
// OpenAPI is optional; routes without it are left out of the API document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Patterns returns the full ServeMux pattern of every route in the group,
// children included, in registration order.
func (g Group) Patterns() []string {
	var out []string
	g.walk("", nil, func(path string, _ []string, route Route) {
		out = append(out, route.Method+" "+path)
	})
	return out
}

// Register adds every route in groups to r. It stops at the first pattern
// that is invalid or conflicts with one already registered.
func Register(r *web.Router, groups ...Group) error {
	var err error
	for _, g := range groups {
		g.walk("", nil, func(path string, _ []string, route Route) {
			if err == nil {
				err = r.Register(route.Method+" "+path, route.Handler)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Document adds the operation of every documented route in groups to doc.
// An operation without tags takes the tags of its nearest tagged group.
func Document(doc *openapi.Document, groups ...Group) {
	for _, g := range groups {
		g.walk("", nil, func(path string, tags []string, route Route) {
			if route.OpenAPI == nil {
				return
			}
			op := *route.OpenAPI
			if len(op.Tags) == 0 {
				op.Tags = tags
			}
			doc.AddOperation(route.Method, path, &op)
		})
	}
}

func (g Group) walk(parent string, tags []string, fn func(path string, tags []string, route Route)) {
	prefix := parent + g.Prefix
	if len(g.Tags) > 0 {
		tags = g.Tags
	}
	for _, route := range g.Routes {
		fn(prefix+route.Pattern, tags, route)
	}
	for _, child := range g.Children {
		child.walk(prefix, tags, fn)
	}
}
