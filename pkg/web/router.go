package web

import (
	"net/http"
	"strings"
)

// Router wraps http.ServeMux and adds a fallback handler for requests that
// match no registered pattern.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

// NewRouter creates an empty Router. Without a fallback, unmatched requests
// receive the standard ServeMux 404 response.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers a handler for the given ServeMux pattern. It panics on an
// invalid or conflicting pattern; use Register for patterns that come from
// configuration.
func (r *Router) Handle(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

// HandleFunc registers a handler function for the given ServeMux pattern.
func (r *Router) HandleFunc(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// Register is Handle with invalid and conflicting patterns reported as
// ErrConflictingRoute instead of a panic.
func (r *Router) Register(pattern string, h http.Handler) error {
	return register(r.mux, pattern, h)
}

// SetFallback sets the handler used when no pattern matches a request.
// Method mismatches on a registered path are treated as unmatched, and so are
// paths that only match by gaining a trailing slash.
func (r *Router) SetFallback(h http.HandlerFunc) {
	r.fallback = h
}

// Mount serves h under prefix for every method. The prefix is removed from
// the request path before h sees it, and the bare prefix is served as "/".
// An empty prefix mounts h at the root.
func (r *Router) Mount(prefix string, h http.Handler) error {
	if prefix == "" {
		return r.Register("/", h)
	}

	strip := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sub := req.Clone(req.Context())
		sub.URL.Path = trimPrefix(req.URL.Path, prefix)
		if req.URL.RawPath != "" {
			sub.URL.RawPath = trimPrefix(req.URL.RawPath, prefix)
		}
		h.ServeHTTP(w, sub)
	})

	if err := r.Register(prefix, strip); err != nil {
		return err
	}
	return r.Register(prefix+"/", strip)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		_, pattern := r.mux.Handler(req)
		// ServeMux reports a /tree -> /tree/ redirect with the target path as
		// its pattern.
		if pattern == "" || pattern == req.URL.Path+"/" {
			r.fallback(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}

func trimPrefix(p, prefix string) string {
	p = strings.TrimPrefix(p, prefix)
	if p == "" {
		return "/"
	}
	return p
}
