package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type bufferSyncer struct {
	bytes.Buffer
}

func (*bufferSyncer) Sync() error { return nil }

func decodeLine(t *testing.T, buf *bufferSyncer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log output, got empty string")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to unmarshal log JSON %q: %v", line, err)
	}
	return payload
}

func TestNewStructuredOutput(t *testing.T) {
	buf := &bufferSyncer{}
	logger := New(buf, zapcore.DebugLevel)
	logger.Info("GET /api/hello", zap.String("word", "hello"))

	payload := decodeLine(t, buf)
	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}
	if _, exists := payload["level"]; exists {
		t.Fatal("did not expect level field")
	}
	if msg := payload["message"]; msg != "GET /api/hello" {
		t.Fatalf("expected message 'GET /api/hello', got %v", msg)
	}
	if word := payload["word"]; word != "hello" {
		t.Fatalf("expected word field, got %v", word)
	}
	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected timestamp string, got %T", payload["timestamp"])
	}
	if _, err := time.Parse(TimestampLayout, ts); err != nil {
		t.Fatalf("timestamp %q does not match layout: %v", ts, err)
	}
	if _, ok := payload["caller"].(string); !ok {
		t.Fatalf("expected caller field, got %v", payload["caller"])
	}
}

func TestNewRespectsLevel(t *testing.T) {
	buf := &bufferSyncer{}
	logger := New(buf, zapcore.WarnLevel)
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info entry to be filtered, got %q", buf.String())
	}
	logger.Warn("kept")
	if got := decodeLine(t, buf)["severity"]; got != "WARNING" {
		t.Fatalf("expected WARNING, got %v", got)
	}
}

func TestEncodeSeverityMapping(t *testing.T) {
	tests := []struct {
		level zapcore.Level
		want  string
	}{
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.InfoLevel, "INFO"},
		{zapcore.WarnLevel, "WARNING"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DPanicLevel, "CRITICAL"},
		{zapcore.PanicLevel, "ALERT"},
		{zapcore.FatalLevel, "EMERGENCY"},
		{zapcore.Level(42), "DEFAULT"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			enc := &sliceArrayEncoder{}
			encodeSeverity(tt.level, enc)
			if len(enc.elems) != 1 || enc.elems[0] != tt.want {
				t.Fatalf("expected %s, got %v", tt.want, enc.elems)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { level.SetLevel(zapcore.InfoLevel) })

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug to be enabled after SetLevel")
	}
	if err := SetLevel("error"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Logger().Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("expected warn to be disabled at error level")
	}
	if err := SetLevel("loud"); err == nil || !strings.Contains(err.Error(), `parse log level "loud"`) {
		t.Fatalf("expected wrapped parse error for unknown level, got %v", err)
	}
}

func TestLoggerSingleton(t *testing.T) {
	if Logger() != Logger() {
		t.Fatal("expected the same logger instance")
	}
	if err := Err(); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
}

// sliceArrayEncoder collects appended strings for encoder assertions.
type sliceArrayEncoder struct {
	zapcore.PrimitiveArrayEncoder
	elems []string
}

func (s *sliceArrayEncoder) AppendString(v string) { s.elems = append(s.elems, v) }
