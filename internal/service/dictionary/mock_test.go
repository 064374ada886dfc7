package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestMockServiceKnownWord(t *testing.T) {
	m := NewMockService()
	body, err := m.Lookup(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var entries []struct {
		Word     string            `json:"word"`
		Meanings []json.RawMessage `json:"meanings"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("mock entry is not valid JSON: %v", err)
	}
	if len(entries) != 1 || entries[0].Word != "hello" || len(entries[0].Meanings) != 2 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if m.Calls() != 1 {
		t.Fatalf("expected 1 call, got %d", m.Calls())
	}
}

func TestMockServiceUnknownWord(t *testing.T) {
	_, err := NewMockService().Lookup(context.Background(), "qwzx")
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) || upstreamErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 upstream error, got %v", err)
	}
}

func TestMockServiceSetEntryAndFailWith(t *testing.T) {
	m := NewMockService()
	m.SetEntry("World", json.RawMessage(`[{"word":"world","meanings":[]}]`))
	if body, err := m.Lookup(context.Background(), "world"); err != nil || string(body) != `[{"word":"world","meanings":[]}]` {
		t.Fatalf("unexpected lookup result: %s, %v", body, err)
	}

	boom := errors.New("boom")
	m.FailWith(boom)
	if _, err := m.Lookup(context.Background(), "hello"); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	m.FailWith(nil)
	if _, err := m.Lookup(context.Background(), "hello"); err != nil {
		t.Fatalf("expected recovery after FailWith(nil), got %v", err)
	}
}

func TestMockServiceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockService().Lookup(ctx, "hello")
	if !errors.Is(err, context.Canceled) || !errors.Is(err, ErrTransport) {
		t.Fatalf("expected cancelled transport error, got %v", err)
	}
}
