package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

// TemplateSet holds pre-parsed templates and a base path for URL generation.
// Templates are parsed once at startup, avoiding per-request overhead.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layout templates and clones them for each
// distinct view template. Views sharing a template are parsed once.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []View) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		if _, ok := parsed[v.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		views:    parsed,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path included in all rendered ViewData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// ErrorHandler returns an HTTP handler that renders the given view with the
// given status code.
func (ts *TemplateSet) ErrorHandler(layout string, view View, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{
			Title:    view.Title,
			Bundle:   view.Bundle,
			BasePath: ts.basePath,
			View:     view.Name,
			Path:     r.URL.Path,
		}
		if err := ts.render(w, status, layout, view.Template, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// ViewHandler returns a MatchHandler that renders the matched entry's view
// with its captured parameters. Render failures are logged and answered
// with a plain 500.
func (ts *TemplateSet) ViewHandler(layout string, logger *slog.Logger) MatchHandler {
	return func(w http.ResponseWriter, r *http.Request, m Match) {
		view := m.Entry.View
		data := ViewData{
			Title:    view.Title,
			Bundle:   view.Bundle,
			BasePath: ts.basePath,
			View:     view.Name,
			Path:     r.URL.Path,
			Params:   m.Params,
		}
		if err := ts.Render(w, layout, view.Template, data); err != nil {
			logger.Error("view render failed", "view", view.Name, "template", view.Template, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// Render executes the named layout template with the given view data.
// Output is buffered so a failed render never produces a partial page.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, tmpl string, data ViewData) error {
	return ts.render(w, http.StatusOK, layout, tmpl, data)
}

func (ts *TemplateSet) render(w http.ResponseWriter, status int, layout, tmpl string, data ViewData) error {
	t, ok := ts.views[tmpl]
	if !ok {
		return fmt.Errorf("template not found: %s", tmpl)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
