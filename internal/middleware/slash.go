package middleware

import (
	"net/http"
	"path"
	"strings"
)

// TrimSlash returns middleware that redirects GET and HEAD requests with a
// trailing slash to the same path without it, so each view has one canonical
// URL. The root path "/" and other methods pass through unchanged.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !canonicalizable(r) {
				next.ServeHTTP(w, r)
				return
			}

			// Clean also collapses leading slashes so the target stays local.
			target := path.Clean(r.URL.Path)
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
	}
}

func canonicalizable(r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	return len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/")
}
