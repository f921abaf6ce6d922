// File: diagnostics.go
// Title: Parameter Diagnostics
// Description: Non-fatal findings raised while parameters are assigned:
//              validation errors, deprecation and other advisories. Sinks
//              decide what to do with them; loading always continues.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parameters

import (
	"fmt"
	"slices"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
	mdwlog "github.com/msto63/ordt/foundation/core/log"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityAdvisory Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "advisory"
}

// Diagnostic is one reported finding.
type Diagnostic struct {
	Severity  Severity
	Code      mdwerror.Code
	Message   string
	Parameter string
	File      string
	Line      int
	Err       error
}

func (d Diagnostic) String() string {
	loc := ""
	switch {
	case d.File != "" && d.Line > 0:
		loc = fmt.Sprintf("%s:%d: ", d.File, d.Line)
	case d.File != "":
		loc = d.File + ": "
	}
	return fmt.Sprintf("%s%s: %s", loc, d.Severity, d.Message)
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// LogSink writes diagnostics to a logger: advisories as warnings, errors as
// errors.
type LogSink struct {
	Logger *mdwlog.Logger
}

// NewLogSink returns a sink writing to logger, or the default logger.
func NewLogSink(logger *mdwlog.Logger) *LogSink {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &LogSink{Logger: logger}
}

// Report implements Sink.
func (s *LogSink) Report(d Diagnostic) {
	fields := mdwlog.Fields{"code": d.Code.String()}
	if d.Parameter != "" {
		fields["parameter"] = d.Parameter
	}
	if d.File != "" {
		fields["file"] = d.File
	}
	if d.Line > 0 {
		fields["line"] = d.Line
	}

	if d.Severity == SeverityError {
		s.Logger.Error(d.Message, fields)
		return
	}
	s.Logger.Warn(d.Message, fields)
}

// Recorder keeps every diagnostic in memory and forwards it to Next.
type Recorder struct {
	Next        Sink
	diagnostics []Diagnostic
}

// NewRecorder returns a recorder forwarding to next, which may be nil.
func NewRecorder(next Sink) *Recorder {
	return &Recorder{Next: next}
}

// Report implements Sink.
func (r *Recorder) Report(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	if r.Next != nil {
		r.Next.Report(d)
	}
}

// All returns every recorded diagnostic in report order.
func (r *Recorder) All() []Diagnostic {
	return slices.Clone(r.diagnostics)
}

// Advisories returns the recorded advisories.
func (r *Recorder) Advisories() []Diagnostic {
	return r.filter(SeverityAdvisory)
}

// Errors returns the recorded validation errors.
func (r *Recorder) Errors() []Diagnostic {
	return r.filter(SeverityError)
}

// Count returns the number of diagnostics of the given severity.
func (r *Recorder) Count(severity Severity) int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

// Reset drops all recorded diagnostics.
func (r *Recorder) Reset() {
	r.diagnostics = nil
}

func (r *Recorder) filter(severity Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.diagnostics {
		if d.Severity == severity {
			out = append(out, d)
		}
	}
	return out
}
