// Package web provides infrastructure for serving server-rendered views.
// Views are bound to URL path patterns through an immutable route Table,
// rendered from templates that are parsed once at startup, and served by
// a Router that falls back to a not-found view for unmatched paths.
package web

import "errors"

var (
	ErrInvalidPattern   = errors.New("invalid route pattern")
	ErrInvalidView      = errors.New("invalid view")
	ErrConflictingRoute = errors.New("conflicting route")
	ErrNoMatch          = errors.New("no route matches path")
	ErrInvalidPath      = errors.New("invalid path")
)

// View is a renderable page: a template plus the metadata the layout needs.
type View struct {
	Name     string
	Template string
	Title    string
	Bundle   string
}

func (v View) validate() error {
	if v.Name == "" {
		return errors.New("name required")
	}
	if v.Template == "" {
		return errors.New("template required")
	}
	return nil
}

// Entry binds a path pattern to the view rendered when it matches.
// Patterns may contain named parameter segments such as /detail/:id.
type Entry struct {
	Path string
	View View
}

// Match is the result of resolving a path against a Table.
type Match struct {
	Entry   Entry
	Pattern string
	Params  map[string]string
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	View     string
	Path     string
	Params   map[string]string
	Data     any
}
