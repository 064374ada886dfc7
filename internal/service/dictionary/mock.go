package dictionary

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

// helloEntry mirrors the shape of a dictionaryapi.dev response for "hello".
const helloEntry = `[{"word":"hello","phonetic":"/həˈləʊ/","phonetics":[{"text":"/həˈləʊ/",` +
	`"audio":"https://api.dictionaryapi.dev/media/pronunciations/en/hello-uk.mp3"}],` +
	`"meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"\"Hello!\" or an equivalent greeting.",` +
	`"synonyms":[],"antonyms":[]}],"synonyms":["greeting"],"antonyms":[]},` +
	`{"partOfSpeech":"interjection","definitions":[{"definition":"A greeting (salutation) said when meeting someone.",` +
	`"example":"Hello, everyone.","synonyms":[],"antonyms":["bye","goodbye"]}]}]}]`

// MockService implements Service for tests and local development. Lookups of unknown
// words fail with a 404 KindStatus error, matching the upstream behaviour.
type MockService struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
	err     error
	calls   int
}

// NewMockService creates a mock pre-populated with an entry for "hello".
func NewMockService() *MockService {
	return &MockService{
		entries: map[string]json.RawMessage{
			"hello": json.RawMessage(helloEntry),
		},
	}
}

// SetEntry stores the raw document returned for word.
func (m *MockService) SetEntry(word string, raw json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[strings.ToLower(word)] = raw
}

// FailWith makes every subsequent lookup return err. A nil err restores normal behaviour.
func (m *MockService) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls reports how many lookups were made.
func (m *MockService) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Lookup returns the stored entry for word.
func (m *MockService) Lookup(ctx context.Context, word string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if err := ctx.Err(); err != nil {
		return nil, &UpstreamError{Kind: KindTransport, cause: err}
	}
	if m.err != nil {
		return nil, m.err
	}
	raw, ok := m.entries[strings.ToLower(word)]
	if !ok {
		return nil, &UpstreamError{Kind: KindStatus, Status: http.StatusNotFound}
	}
	return raw, nil
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
