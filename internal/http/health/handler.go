package health

import (
	"net/http"

	"github.com/janisto/dictionary-api/internal/platform/respond"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Handler returns a plain HTTP handler for the health check endpoint reporting the build version.
func Handler(version string) http.HandlerFunc {
	body := Response{Status: "healthy", Version: version}
	return func(w http.ResponseWriter, _ *http.Request) {
		_ = respond.WriteJSON(w, http.StatusOK, body)
	}
}
