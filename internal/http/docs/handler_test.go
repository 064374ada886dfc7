package docs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	Register(router, "Docs Test", "/openapi.json")
	return router
}

func TestRootRedirectsToDocs(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{"/", "/?foo=bar"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Accept", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", target, resp.Code)
		}
		if loc := resp.Header().Get("Location"); loc != Path {
			t.Fatalf("%s: expected Location %s, got %q", target, Path, loc)
		}
		if resp.Body.Len() != 0 {
			t.Fatalf("%s: expected empty body, got %q", target, resp.Body.String())
		}
	}
}

func TestDocsServesUI(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{"/docs", "/docs/"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, resp.Code)
		}
		if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("%s: expected text/html, got %q", target, ct)
		}
		body := resp.Body.String()
		if !strings.Contains(body, "/openapi.json") {
			t.Fatalf("%s: expected UI to reference the OpenAPI document", target)
		}
		if !strings.Contains(body, "Docs Test") {
			t.Fatalf("%s: expected UI title", target)
		}
	}
}
