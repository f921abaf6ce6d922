// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context handling, level
//              filtering, formatters and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-16 v0.2.0: Text/logfmt ordering, timer entries, LogError fields

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
)

func newBufferLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: &buf,
		Name:   "test",
	}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelError)

	if logger.GetLevel() != LevelError {
		t.Errorf("level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.Name() != "test" {
		t.Errorf("name = %v, want test", logger.Name())
	}
	if logger.output != buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestWithMethodsReturnCopies(t *testing.T) {
	logger := New()

	withLevel := logger.WithLevel(LevelDebug)
	if withLevel == logger || logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify the original logger")
	}

	withField := logger.WithField("file", "a.parms")
	if withField.contextFields["file"] != "a.parms" {
		t.Error("WithField() should add context field")
	}
	if _, exists := logger.contextFields["file"]; exists {
		t.Error("WithField() should not modify original logger")
	}

	withCorr := logger.WithCorrelationID("run-1")
	if withCorr.correlationID != "run-1" || logger.correlationID != "" {
		t.Error("WithCorrelationID() should only affect the copy")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown warn")
	logger.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("warn and error should be logged: %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelInfo)
	logger.WithCorrelationID("run-1").WithField("component", "parameters").
		Warn("deprecated parameter", Field("parameter", "use_external_select"))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]string{
		"level":          "warn",
		"message":        "deprecated parameter",
		"logger":         "test",
		"correlation_id": "run-1",
		"component":      "parameters",
		"parameter":      "use_external_select",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestJSONOutputWithStructuredError(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelInfo)
	err := mdwerror.New("parameter file not found").WithCode(mdwerror.CodeNotFound)
	logger.ErrorWithErr("load failed", err)

	var data map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &data); jerr != nil {
		t.Fatalf("output is not JSON: %v", jerr)
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", data)
	}
	if details["code"] != "NOT_FOUND" {
		t.Errorf("error_details.code = %v", details["code"])
	}
}

func TestTextOutputSortsFields(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelInfo)
	logger.Info("assign", Fields{"value": "8", "name": "width", "file": "a.parms"})

	out := buf.String()
	if !strings.Contains(out, "[INF] {test} assign [file=a.parms name=width value=8]") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestLogfmtOutput(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt, LevelInfo)
	logger.Info("reading parameters", Field("file", "a b.parms"))

	out := buf.String()
	for _, want := range []string{`level=info`, `message="reading parameters"`, `file="a b.parms"`, `logger=test`} {
		if !strings.Contains(out, want) {
			t.Errorf("logfmt output missing %q: %q", want, out)
		}
	}
}

func TestConsoleOutputColors(t *testing.T) {
	logger, buf := newBufferLogger(FormatConsole, LevelInfo)
	logger.Error("boom")

	if !strings.HasPrefix(buf.String(), LevelError.Color()) {
		t.Errorf("console output should start with the level color: %q", buf.String())
	}
}

func TestLogError(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelInfo)

	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not log")
	}

	err := mdwerror.New("invalid minimum data size (48).").
		WithCode(mdwerror.CodeValidationFailed).
		WithDetail("parameter", "min_data_size")
	logger.LogError(err)

	out := buf.String()
	for _, want := range []string{"[ERR]", "invalid minimum data size (48).", "error_code=VALIDATION_FAILED", "parameter=min_data_size"} {
		if !strings.Contains(out, want) {
			t.Errorf("LogError output missing %q: %q", want, out)
		}
	}

	buf.Reset()
	logger.LogError(errors.New("plain"))
	if !strings.Contains(buf.String(), `error="plain"`) {
		t.Errorf("plain errors should be logged with the error: %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelDebug)

	timer := logger.StartTimer("load_parameters").WithField("files", 2)
	if d := timer.Stop(); d < 0 {
		t.Errorf("Stop() = %v, want >= 0", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Error("second Stop() should be a no-op")
	}

	out := buf.String()
	if !strings.Contains(out, "load_parameters completed") || !strings.Contains(out, "files=2") {
		t.Errorf("timer output = %q", out)
	}

	buf.Reset()
	logger.StartTimer("parse").StopWithError(errors.New("syntax"))
	if !strings.Contains(buf.String(), "parse failed") || !strings.Contains(buf.String(), "success=false") {
		t.Errorf("timer error output = %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	levels := map[string]Level{"trace": LevelTrace, "DEBUG": LevelDebug, " info ": LevelInfo, "warning": LevelWarn, "err": LevelError, "fatal": LevelFatal}
	for in, want := range levels {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel() should reject unknown levels")
	}

	formats := map[string]Format{"json": FormatJSON, "Text": FormatText, "console": FormatConsole, "logfmt": FormatLogfmt}
	for in, want := range formats {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil || err.Error() != "invalid format: xml" {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should not enable any level")
	}
}
