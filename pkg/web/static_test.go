package web_test

import (
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/storefront/pkg/web"
)

//go:embed testdata/static/*
var staticFS embed.FS

func TestDistServerServesFile(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static", "/dist/")

	req := httptest.NewRequest(http.MethodGet, "/dist/app.js", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "console.log") {
		t.Error("response body does not contain expected content")
	}
}

func TestDistServerNotFound(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static", "/dist/")

	req := httptest.NewRequest(http.MethodGet, "/dist/nonexistent.js", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDistServerDirectories(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static", "/dist/")

	tests := []struct {
		path string
		want int
	}{
		{"/dist/", http.StatusNotFound},
		{"/dist/js", http.StatusNotFound},
		{"/dist/js/", http.StatusNotFound},
		{"/dist/../static/app.js", http.StatusNotFound},
		{"/dist/js/vendor.js", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if strings.Contains(w.Body.String(), "<pre>") {
				t.Errorf("body contains a directory listing: %q", w.Body.String())
			}
		})
	}
}

func TestPublicFileServesFile(t *testing.T) {
	handler := web.PublicFile(staticFS, "testdata/static", "test.txt")

	req := httptest.NewRequest(http.MethodGet, "/test.txt", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "test content") {
		t.Error("response body does not contain expected content")
	}
}

func TestPublicFileNotFound(t *testing.T) {
	handler := web.PublicFile(staticFS, "testdata/static", "nonexistent.txt")

	req := httptest.NewRequest(http.MethodGet, "/nonexistent.txt", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestPublicFileRoutes(t *testing.T) {
	routes := web.PublicFileRoutes(staticFS, "testdata/static", "test.txt", "app.js")

	if len(routes) != 2 {
		t.Fatalf("PublicFileRoutes() returned %d routes, want 2", len(routes))
	}

	expectedPatterns := []string{"/test.txt", "/app.js"}
	for i, route := range routes {
		if route.Method != http.MethodGet {
			t.Errorf("route %d: Method = %q, want GET", i, route.Method)
		}
		if route.Pattern != expectedPatterns[i] {
			t.Errorf("route %d: Pattern = %q, want %q", i, route.Pattern, expectedPatterns[i])
		}
		if route.Handler == nil {
			t.Errorf("route %d: Handler is nil", i)
		}
	}
}

func TestServeEmbeddedFile(t *testing.T) {
	handler := web.ServeEmbeddedFile([]byte("hello world"), "text/plain")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if ct := w.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if w.Body.String() != "hello world" {
		t.Errorf("body = %q, want %q", w.Body.String(), "hello world")
	}
}
