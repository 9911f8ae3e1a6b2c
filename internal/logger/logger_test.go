package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "json")

	log.Info().Str("dbsize", "small").Msg("Report written")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["dbsize"] != "small" || entry["service"] != "gradebook" || entry["message"] != "Report written" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "verbose", "json")

	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug line emitted at fallback level: %q", buf.String())
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("global level = %s, want info", zerolog.GlobalLevel())
	}
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "pretty")
	log.Info().Msg("Server listening")

	if !strings.Contains(buf.String(), "Server listening") {
		t.Errorf("pretty output missing message: %q", buf.String())
	}
	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("pretty output looks like JSON: %q", buf.String())
	}
}
