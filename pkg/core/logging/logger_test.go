package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/ordt/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("ordt-parms")

	if cfg.Name != "ordt-parms" {
		t.Errorf("Name = %v, want ordt-parms", cfg.Name)
	}
	if cfg.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"invalid", mdwlog.LevelInfo}, // defaults to info
		{"", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Format
	}{
		{"json", mdwlog.FormatJSON},
		{"text", mdwlog.FormatText},
		{"console", mdwlog.FormatConsole},
		{"logfmt", mdwlog.FormatLogfmt},
		{"xml", mdwlog.FormatText}, // defaults to text
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseFormat(tt.input); got != tt.expected {
				t.Errorf("parseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:      "ordt-parms",
		Level:     "debug",
		Format:    "json",
		Output:    &buf,
		SessionID: "run-1",
	})

	logger.Debug("loaded", mdwlog.Fields{"files": 2})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}
	if entry["correlation_id"] != "run-1" {
		t.Errorf("correlation_id = %v, want run-1", entry["correlation_id"])
	}
	if entry["message"] != "loaded" {
		t.Errorf("message = %v, want loaded", entry["message"])
	}
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "warn", Format: "text", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "shown") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Format:            "text",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("both")

	if !strings.Contains(primary.String(), "both") {
		t.Errorf("primary output missing entry: %q", primary.String())
	}
	if primary.String() != extra.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), extra.String())
	}
}

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == b {
		t.Error("session ids should be unique")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("session id %q is not a UUID: %v", a, err)
	}

	var buf bytes.Buffer
	NewLogger(LoggerConfig{Format: "logfmt", Output: &buf}).Info("start")
	if !strings.Contains(buf.String(), "correlation_id=") {
		t.Errorf("generated session id missing: %q", buf.String())
	}
}
