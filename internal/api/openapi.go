package api

import "github.com/JaimeStill/storefront/pkg/openapi"

type spec struct {
	List    *openapi.Operation
	Resolve *openapi.Operation
}

// Spec holds the OpenAPI operations of the route API.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List routes",
		Description: "Returns every route table entry in registration order",
		Responses: map[int]*openapi.Response{
			200: openapi.JSON("Route table", openapi.ArrayOf(openapi.Ref("RouteInfo"))),
		},
	},
	Resolve: &openapi.Operation{
		Summary:     "Resolve a path",
		Description: "Selects the view the storefront would render for a path",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("path", "URL path to resolve, such as /detail/42", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.JSON("Selected view and parameters", openapi.Ref("Resolution")),
			400: openapi.JSON("Missing or malformed path", openapi.Ref("ErrorResponse")),
			404: openapi.JSON("No route matches the path", openapi.Ref("ErrorResponse")),
		},
	},
}

// Schemas returns the component schemas referenced by Spec.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"RouteInfo": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"path":     openapi.String("Registered path, parameters written as :name"),
				"view":     openapi.String("View name"),
				"template": openapi.String("Template file rendered for the view"),
				"pattern":  openapi.String("ServeMux pattern the path compiles to"),
			},
			Required: []string{"path", "view", "template", "pattern"},
		},
		"Resolution": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"path":    openapi.String("Path as requested"),
				"view":    openapi.String("Selected view name"),
				"pattern": openapi.String("Pattern that matched"),
				"params": {
					Type:                 "object",
					Description:          "Parameter values keyed by name",
					AdditionalProperties: &openapi.Schema{Type: "string"},
				},
			},
			Required: []string{"path", "view", "pattern", "params"},
		},
		"ErrorResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"error":  openapi.String("Error message"),
				"status": {Type: "integer", Description: "HTTP status code"},
			},
			Required: []string{"error", "status"},
		},
	}
}
