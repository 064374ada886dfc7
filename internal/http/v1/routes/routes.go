package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/dictionary-api/internal/http/v1/dictionary"
	dictsvc "github.com/janisto/dictionary-api/internal/service/dictionary"
)

// Register wires all API routes into the provided API router.
func Register(api huma.API, dictionaryService dictsvc.Service) {
	dictionary.Register(api, dictionaryService)
}
