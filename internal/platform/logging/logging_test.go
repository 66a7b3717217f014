package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWritesJSONWithService(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Service: "web"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info().Str("path", "/").Msg("served")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["service"] != "web" {
		t.Fatalf("service = %v, want %q", entry["service"], "web")
	}
	if entry["message"] != "served" {
		t.Fatalf("message = %v, want %q", entry["message"], "served")
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp in %v", entry)
	}
}

func TestNewHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "WARN"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	logger.Warn().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn entry, got %q", buf.String())
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, HumanReadable: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info().Msg("pretty")
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}
