package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/storefront/internal/middleware"
)

func TestTrimSlash(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"root path preserved", http.MethodGet, "/", http.StatusOK, ""},
		{"path without trailing slash", http.MethodGet, "/cart", http.StatusOK, ""},
		{"trailing slash redirects", http.MethodGet, "/cart/", http.StatusMovedPermanently, "/cart"},
		{"nested path", http.MethodGet, "/detail/7/", http.StatusMovedPermanently, "/detail/7"},
		{"query preserved", http.MethodGet, "/products/?sort=best", http.StatusMovedPermanently, "/products?sort=best"},
		{"head redirects", http.MethodHead, "/login/", http.StatusMovedPermanently, "/login"},
		{"leading slashes collapsed", http.MethodGet, "//evil.example/", http.StatusMovedPermanently, "/evil.example"},
		{"post passes through", http.MethodPost, "/cart/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			middleware.TrimSlash()(handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if loc := rec.Header().Get("Location"); loc != tt.wantLocation {
				t.Errorf("Location = %q, want %q", loc, tt.wantLocation)
			}
		})
	}
}
