package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupCapturesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, zerolog.DebugLevel)
	defer Discard()

	lg := ForEngine("glmnet")
	lg.Info().
		Str(OperationKey, "bind").
		Msg("engine bound")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected a log line, got none")
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}

	if entry[EngineKey] != "glmnet" {
		t.Errorf("engine field = %v, want glmnet", entry[EngineKey])
	}
	if entry[OperationKey] != "bind" {
		t.Errorf("operation field = %v, want bind", entry[OperationKey])
	}
}

func TestDiscardSilencesOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, zerolog.DebugLevel)
	Discard()

	lg := Logger()
	lg.Error().Msg("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output after Discard, got %q", buf.String())
	}
}
