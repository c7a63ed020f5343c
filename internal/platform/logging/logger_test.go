package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.InfoContext(context.Background(), "match created", "match_id", int64(7), "error", errors.New("boom"))
	_ = logger.Sync()

	var entry map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("unmarshal log entry: %v (raw=%s)", err, buf.String())
	}
	if entry["msg"] != "match created" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["match_id"] != float64(7) {
		t.Fatalf("unexpected match_id: %v", entry["match_id"])
	}
	if entry["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", entry["error"])
	}
	if _, ok := entry["trace_id"]; ok {
		t.Fatalf("did not expect trace_id without an active span")
	}
}

func TestLogger_CallerIsTheCallSite(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Info("plain")
	logger.WarnContext(context.Background(), "with context")
	_ = logger.Sync()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d (raw=%s)", len(lines), buf.String())
	}
	for _, line := range lines {
		var entry map[string]any
		if err := sonic.Unmarshal(line, &entry); err != nil {
			t.Fatalf("unmarshal log entry: %v", err)
		}
		caller, _ := entry["caller"].(string)
		if !strings.HasPrefix(caller, "logging/logger_test.go:") {
			t.Fatalf("expected caller in logger_test.go, got %q", caller)
		}
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		" error ": LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want=%v", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	logger.With("k", "v").Warn("still no panic")
}
