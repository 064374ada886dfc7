// Package respond writes router-level responses that never reach a huma operation:
// RFC 9457 problem details for unknown routes, disallowed methods and recovered
// panics, plus redirects and small JSON payloads.
package respond

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	applog "github.com/janisto/dictionary-api/internal/platform/logging"
)

const (
	contentTypeProblemJSON = "application/problem+json"
	contentTypeProblemCBOR = "application/problem+cbor"

	msgNotFound          = "resource not found"
	msgInternalServerErr = "internal server error"
)

// WriteProblem renders an RFC 9457 problem body as CBOR when the client prefers it
// and as JSON otherwise.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) error {
	problem := &huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	contentType := contentTypeProblemJSON
	var (
		body []byte
		err  error
	)
	if selectFormat(r.Header.Get("Accept")) == formatCBOR {
		contentType = contentTypeProblemCBOR
		body, err = cbor.Marshal(problem)
	} else {
		body, err = marshalJSON(problem)
	}
	if err != nil {
		return errors.Wrap(err, "encode problem")
	}

	h := w.Header()
	h.Set("Content-Type", contentType)
	ensureVary(h, "Accept")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// WriteJSON renders v as a JSON document with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	body, err := marshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "encode json")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}

// WriteRedirect sends a bodiless redirect to location. Non-3xx codes fall back to 302.
func WriteRedirect(w http.ResponseWriter, _ *http.Request, location string, status int) {
	if status < 300 || status > 399 {
		status = http.StatusFound
	}
	w.Header().Set("Location", location)
	w.WriteHeader(status)
}

// NotFoundHandler emits a 404 problem response.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := WriteProblem(w, r, http.StatusNotFound, msgNotFound); err != nil {
			applog.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler emits a 405 problem response listing the allowed methods.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		detail := fmt.Sprintf("method %s not allowed", r.Method)
		if err := WriteProblem(w, r, http.StatusMethodNotAllowed, detail); err != nil {
			applog.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into 500 problem responses and logs the stack.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
// When the handler already wrote a status line, nothing more is written.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				err, ok := rec.(error)
				if !ok {
					err = errors.Errorf("%v", rec)
				}
				if errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				applog.LogError(r.Context(), "panic recovered", err, zap.ByteString("stack", debug.Stack()))
				if rw.wroteHeader {
					return
				}
				if writeErr := WriteProblem(rw, r, http.StatusInternalServerError, msgInternalServerErr); writeErr != nil {
					applog.LogError(r.Context(), "failed to render internal error", writeErr)
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// responseWriter records whether the status line has been sent.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// allowedMethods inspects chi's routing tree to discover the methods registered for the path.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		routePath = r.URL.RawPath
		if routePath == "" {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		if rctx.Routes.Match(chi.NewRouteContext(), method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func ensureVary(h http.Header, name string) {
	for _, v := range h.Values("Vary") {
		for part := range strings.SplitSeq(v, ",") {
			if strings.EqualFold(strings.TrimSpace(part), name) {
				return
			}
		}
	}
	h.Add("Vary", name)
}
