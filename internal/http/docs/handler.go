package docs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/janisto/dictionary-api/internal/platform/respond"
)

// Path is where the documentation UI is served.
const Path = "/docs"

// Register mounts the root redirect and the Swagger UI backed by specURL.
func Register(router chi.Router, title, specURL string) {
	ui := v5emb.New(title, specURL, Path+"/")

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respond.WriteRedirect(w, r, Path, http.StatusFound)
	})
	router.Get(Path, func(w http.ResponseWriter, r *http.Request) {
		// The UI resolves its assets against the trailing-slash base path.
		r2 := r.Clone(r.Context())
		r2.URL.Path = Path + "/"
		r2.URL.RawPath = ""
		ui.ServeHTTP(w, r2)
	})
	router.Get(Path+"/*", ui.ServeHTTP)
}
