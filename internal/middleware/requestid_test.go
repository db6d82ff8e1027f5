package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/storefront/internal/middleware"
)

func TestRequestID_Generates(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	middleware.RequestID()(handler).ServeHTTP(rec, req)

	header := rec.Header().Get(middleware.RequestIDHeader)
	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("response header %q is not a UUID: %v", header, err)
	}
	if seen != header {
		t.Errorf("context ID = %q, want %q", seen, header)
	}
}

func TestRequestID_Unique(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	ids := make(map[string]bool)
	for range 10 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		ids[rec.Header().Get(middleware.RequestIDHeader)] = true
	}

	if len(ids) != 10 {
		t.Errorf("got %d distinct IDs, want 10", len(ids))
	}
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "upstream-id")
	rec := httptest.NewRecorder()
	middleware.RequestID()(handler).ServeHTTP(rec, req)

	if seen != "upstream-id" {
		t.Errorf("context ID = %q, want %q", seen, "upstream-id")
	}
	if got := rec.Header().Get(middleware.RequestIDHeader); got != "upstream-id" {
		t.Errorf("response header = %q, want %q", got, "upstream-id")
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := middleware.RequestIDFromContext(req.Context()); id != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", id)
	}
}
