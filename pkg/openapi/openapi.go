// Package openapi builds OpenAPI 3.1 documents for the JSON endpoints the
// service exposes. Operations are attached to routes and collected into a
// Document when the router is assembled.
package openapi

import (
	"encoding/json"
	"net/http"
)

// Version is the OpenAPI version written to every Document.
const Version = "3.1.0"

// Document is an OpenAPI document.
type Document struct {
	OpenAPI    string               `json:"openapi"`
	Info       Info                 `json:"info"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// PathItem holds the operations available on one path.
type PathItem struct {
	Get    *Operation `json:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"`
	Put    *Operation `json:"put,omitempty"`
	Delete *Operation `json:"delete,omitempty"`
}

// Operation describes a single API operation on a path.
type Operation struct {
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []*Parameter      `json:"parameters,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

// Parameter describes a query or path parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema"`
}

// Response describes one response of an operation.
type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// MediaType binds a schema to a content type.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Schema is the subset of JSON Schema used by the route API.
type Schema struct {
	Type                 string             `json:"type,omitempty"`
	Description          string             `json:"description,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	AdditionalProperties *Schema            `json:"additionalProperties,omitempty"`
	Ref                  string             `json:"$ref,omitempty"`
}

// Components holds reusable schemas.
type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty"`
}

// New creates an empty document.
func New(info Info) *Document {
	return &Document{
		OpenAPI: Version,
		Info:    info,
		Paths:   make(map[string]*PathItem),
	}
}

// AddSchemas registers named component schemas.
func (d *Document) AddSchemas(schemas map[string]*Schema) {
	if d.Components == nil {
		d.Components = &Components{Schemas: make(map[string]*Schema)}
	}
	for name, s := range schemas {
		d.Components.Schemas[name] = s
	}
}

// AddOperation sets op for method on path. Methods without a PathItem slot
// are ignored.
func (d *Document) AddOperation(method, path string, op *Operation) {
	item := d.Paths[path]
	if item == nil {
		item = &PathItem{}
		d.Paths[path] = item
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodDelete:
		item.Delete = op
	}
}

// MarshalIndent renders the document as indented JSON.
func (d *Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Ref references a schema in components/schemas.
func Ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// ArrayOf is an array schema with items of s.
func ArrayOf(s *Schema) *Schema {
	return &Schema{Type: "array", Items: s}
}

// String is a string schema.
func String(description string) *Schema {
	return &Schema{Type: "string", Description: description}
}

// QueryParam creates a string query parameter.
func QueryParam(name, description string, required bool) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "query",
		Required:    required,
		Description: description,
		Schema:      &Schema{Type: "string"},
	}
}

// JSON creates a response with an application/json body of schema s.
func JSON(description string, s *Schema) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: s},
		},
	}
}

// Text creates a response with a text/plain body.
func Text(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"text/plain": {Schema: &Schema{Type: "string"}},
		},
	}
}
