package dictionary

import (
	"context"
	"net/http"
	"reflect"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/dictionary-api/internal/platform/logging"
	dictsvc "github.com/janisto/dictionary-api/internal/service/dictionary"
)

const (
	contentTypeJSON = "application/json"
	failureMessage  = "Failed to retrieve data"
)

// failureBody is the exact payload returned for every upstream failure.
var failureBody = []byte(`{"message":"` + failureMessage + `"}`)

// Register wires the dictionary lookup route into the provided API router.
func Register(api huma.API, svc dictsvc.Service) {
	registry := api.OpenAPI().Components.Schemas

	huma.Register(api, huma.Operation{
		OperationID:   "get-dictionary-entry",
		Method:        http.MethodGet,
		Path:          "/api/{word}",
		Summary:       "Retrieve dictionary data for a word",
		Description:   "Looks the word up in the upstream dictionary and relays its entries unchanged.",
		Tags:          []string{"Dictionary"},
		DefaultStatus: http.StatusOK,
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Dictionary entries for the word",
				Content: map[string]*huma.MediaType{
					contentTypeJSON: {Schema: registry.Schema(reflect.TypeOf([]DictionaryData{}), true, "DictionaryEntries")},
				},
			},
			"500": {
				Description: "The upstream lookup failed",
				Content: map[string]*huma.MediaType{
					contentTypeJSON: {Schema: registry.Schema(reflect.TypeOf(LookupFailure{}), false, "LookupFailure")},
				},
			},
		},
	}, func(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
		body, err := svc.Lookup(ctx, input.Word)
		if err != nil {
			applog.LogError(ctx, "dictionary lookup failed", err,
				zap.String("word", input.Word),
				zap.String("kind", string(dictsvc.KindOf(err))),
			)
			return &LookupOutput{
				Status:      http.StatusInternalServerError,
				ContentType: contentTypeJSON,
				Body:        failureBody,
			}, nil
		}
		return &LookupOutput{
			Status:      http.StatusOK,
			ContentType: contentTypeJSON,
			Body:        body,
		}, nil
	})
}
