package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/storefront/internal/api"
	"github.com/JaimeStill/storefront/pkg/openapi"
	"github.com/JaimeStill/storefront/pkg/routes"
)

// buildSpec renders the OpenAPI document for the documented routes in groups.
func buildSpec(groups ...routes.Group) ([]byte, error) {
	doc := openapi.New(openapi.Info{
		Title:       "Storefront API",
		Version:     version,
		Description: "Route table introspection and operational endpoints of the storefront page server.",
	})
	doc.AddSchemas(api.Spec.Schemas())
	routes.Document(doc, groups...)

	data, err := doc.MarshalIndent()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}
	return data, nil
}

func serveOpenAPISpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
