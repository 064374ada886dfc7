package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecuritySetsHeaders(t *testing.T) {
	resp := httptest.NewRecorder()
	Security()(okHandler()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/hello", nil))

	tests := []struct {
		header string
		want   string
	}{
		{"Cache-Control", "no-store"},
		{"Content-Security-Policy", "frame-ancestors 'none'"},
		{"Cross-Origin-Opener-Policy", "same-origin"},
		{"Cross-Origin-Resource-Policy", "same-origin"},
		{"Permissions-Policy", permissionsPolicy},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
	}
	for _, tt := range tests {
		if got := resp.Header().Get(tt.header); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}

func TestSecuritySkipsPrefixes(t *testing.T) {
	for _, path := range []string{"/docs", "/docs/swagger-ui.css"} {
		resp := httptest.NewRecorder()
		Security("/docs")(okHandler()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if got := resp.Header().Get("X-Frame-Options"); got != "" {
			t.Fatalf("%s: expected no security headers, got X-Frame-Options %q", path, got)
		}
	}
}

func TestSecurityPreservesDownstreamResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Custom", "value")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("test body"))
	})
	resp := httptest.NewRecorder()
	Security()(handler).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if resp.Header().Get("X-Custom") != "value" {
		t.Fatal("expected downstream header to survive")
	}
	if resp.Body.String() != "test body" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestVaryAddsHeader(t *testing.T) {
	resp := httptest.NewRecorder()
	Vary("Accept")(okHandler()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := resp.Header().Get("Vary"); got != "Accept" {
		t.Fatalf("expected Vary: Accept, got %q", got)
	}
}

func TestVaryDoesNotDuplicate(t *testing.T) {
	resp := httptest.NewRecorder()
	resp.Header().Set("Vary", "Origin, accept")
	Vary("Accept", "Accept-Encoding")(okHandler()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	values := resp.Header().Values("Vary")
	if len(values) != 2 {
		t.Fatalf("expected existing value plus Accept-Encoding, got %v", values)
	}
	if values[1] != "Accept-Encoding" {
		t.Fatalf("expected Accept-Encoding appended, got %v", values)
	}
}
