package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		value string
		env   string
		want  slog.Level
	}{
		{"", "production", slog.LevelInfo},
		{"", "development", slog.LevelDebug},
		{" WARNING ", "", slog.LevelWarn},
		{"fatal", "", LevelCritical},
		{"verbose", "", slog.LevelInfo},
	}

	for _, tc := range tests {
		if got := parseLevel(tc.value, tc.env); got != tc.want {
			t.Fatalf("parseLevel(%q, %q) = %v, want %v", tc.value, tc.env, got, tc.want)
		}
	}
}

func TestCriticalLevelName(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo, "json").Critical("boom", "component", "db")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "CRITICAL" || entry["component"] != "db" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestErrorHelpersSkipNil(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "text")

	log.BusinessError("ignored", nil)
	log.InternalError("ignored", nil)
	if buf.Len() != 0 {
		t.Fatalf("nil errors must not log, got %q", buf.String())
	}

	log.BusinessError("rejected", errors.New("bad input"))
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "bad input") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestStdLoggerKeepsLevelAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn, "text").With("service", "aurora")

	log.StdLogger(slog.LevelInfo).Print("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info line must be filtered, got %q", buf.String())
	}

	log.StdLogger(slog.LevelWarn).Printf("slow query %dms", 250)
	out := buf.String()
	if !strings.Contains(out, "slow query 250ms") || !strings.Contains(out, "service=aurora") {
		t.Fatalf("unexpected output %q", out)
	}
}
