// File: parser_test.go
// Title: Parameter File Parser Unit Tests
// Description: Tests for section parsing, event output, annotation commands
//              and syntax error recovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser test suite
// - 2026-10-16 v0.2.0: Sections, events and error recovery

package extparms

import (
	"errors"
	"slices"
	"strings"
	"testing"

	mdwlog "github.com/msto63/ordt/foundation/core/log"
)

func collect(f *File) []Event {
	return slices.Collect(f.Events())
}

func TestParser_Parse(t *testing.T) {
	parser, err := New(Options{Logger: mdwlog.Discard()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, events []Event)
	}{
		{
			name:  "Empty file",
			input: "  // nothing here\n",
			check: func(t *testing.T, events []Event) {
				if len(events) != 0 {
					t.Errorf("Expected no events, got %d", len(events))
				}
			},
		},
		{
			name:  "Global section",
			input: "global {\n  base_address = 0x1000\n  min_data_size = 64\n}",
			check: func(t *testing.T, events []Event) {
				if len(events) != 2 {
					t.Fatalf("Expected 2 events, got %d", len(events))
				}
				e := events[0]
				if e.Kind != EventAssign || e.Category != CategoryGlobal {
					t.Errorf("Unexpected event %v", e)
				}
				if !slices.Equal(e.Tokens, []string{"base_address", "=", "0x1000"}) {
					t.Errorf("Unexpected tokens %v", e.Tokens)
				}
				if e.Line != 2 || events[1].Line != 3 {
					t.Errorf("Unexpected lines %d, %d", e.Line, events[1].Line)
				}
			},
		},
		{
			name: "All nine assignment categories",
			input: `
global { a = 1 }
input rdl { b = 2 }
input jspec { c = 3 }
output systemverilog { d = 4 }
output rdl { e = 5 }
output jspec { f = 6 }
output reglist { g = 7 }
output uvmregs { h = 8 }
output bench { i = 9 }`,
			check: func(t *testing.T, events []Event) {
				want := []Category{
					CategoryGlobal, CategoryRdlIn, CategoryJspecIn,
					CategorySystemVerilogOut, CategoryRdlOut, CategoryJspecOut,
					CategoryReglistOut, CategoryUvmregsOut, CategoryBenchOut,
				}
				if len(events) != len(want) {
					t.Fatalf("Expected %d events, got %d", len(want), len(events))
				}
				for i, c := range want {
					if events[i].Category != c {
						t.Errorf("event %d category = %s; want %s", i, events[i].Category, c)
					}
				}
			},
		},
		{
			name:  "Value token kinds",
			input: `output systemverilog { module_tag = "_x" root_decoder_interface = ring16 use_gated_logic_clock = true }`,
			check: func(t *testing.T, events []Event) {
				values := []string{events[0].Token(2), events[1].Token(2), events[2].Token(2)}
				if !slices.Equal(values, []string{`"_x"`, "ring16", "true"}) {
					t.Errorf("Unexpected values %v", values)
				}
			},
		},
		{
			name: "Annotation commands",
			input: `annotate {
  set_field_property "width" = "8" instances "top.reg0.f0"
  set_reg_property sw = "r" components "blk_t"
}`,
			check: func(t *testing.T, events []Event) {
				if len(events) != 2 {
					t.Fatalf("Expected 2 events, got %d", len(events))
				}
				want := []string{"set_field_property", `"width"`, "=", `"8"`, "instances", `"top.reg0.f0"`}
				if events[0].Kind != EventAnnotation || !slices.Equal(events[0].Tokens, want) {
					t.Errorf("Unexpected annotation %v", events[0])
				}
				if events[1].Token(0) != "set_reg_property" || events[1].Token(4) != "components" {
					t.Errorf("Unexpected annotation %v", events[1])
				}
			},
		},
		{
			name:  "Mixed sections keep order",
			input: "global { a = 1 }\nannotate { set_reg_property p = \"v\" instances \"x\" }\nglobal { b = 2 }",
			check: func(t *testing.T, events []Event) {
				kinds := []EventKind{events[0].Kind, events[1].Kind, events[2].Kind}
				if !slices.Equal(kinds, []EventKind{EventAssign, EventAnnotation, EventAssign}) {
					t.Errorf("Unexpected order %v", kinds)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := parser.Parse("test.parms", tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if f.Source != "test.parms" {
				t.Errorf("Source = %q", f.Source)
			}
			events := collect(f)
			if f.Len() != len(events) {
				t.Errorf("Len() = %d; events = %d", f.Len(), len(events))
			}
			tt.check(t, events)
		})
	}
}

func TestParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errors  int
		message string
		line    int
	}{
		{"unknown section", "params { a = 1 }", 1, "unknown section 'params'", 1},
		{"unknown output language", "output vhdl { a = 1 }", 1, "unknown output language 'vhdl'", 1},
		{"missing equals", "global {\n a 1\n}", 1, "expected '=' after parameter name", 2},
		{"missing value", "global { a = }", 1, "expected value, got RIGHT_BRACE", 1},
		{"missing close brace", "global { a = 1", 1, "expected '}' to close section", 1},
		{"unterminated string", "global { a = \"abc }", 2, "unterminated string literal", 1},
		{"bad annotation mode", `annotate { set_reg_property p = "v" everywhere "x" }`, 1, "expected 'instances' or 'components'", 1},
		{"unquoted annotation value", `annotate { set_reg_property p = v instances "x" }`, 1, "expected quoted property value", 1},
		{"multiple errors recovered", "global {\n a 1\n b = 2\n c = = 3\n}\noutput foo { }\n", 3, "expected '=' after parameter name", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse("bad.parms", tt.input)
			if err == nil {
				t.Fatalf("Parse() should fail, got %d events", f.Len())
			}
			if f != nil {
				t.Error("Parse() should not return a file on syntax errors")
			}

			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error should be *SyntaxError, got %T", err)
			}
			if len(se.Errors) != tt.errors {
				t.Fatalf("got %d errors, want %d: %v", len(se.Errors), tt.errors, se)
			}
			first := se.Errors[0]
			if first.Message != tt.message {
				t.Errorf("first error message = %q; want %q", first.Message, tt.message)
			}
			if first.Line != tt.line {
				t.Errorf("first error line = %d; want %d", first.Line, tt.line)
			}
			if !strings.HasPrefix(err.Error(), "bad.parms: ") {
				t.Errorf("error should name its source: %q", err.Error())
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Error("errors.As should reach the individual ParseError")
			}
		})
	}
}

func TestParser_RecoveryKeepsLaterSections(t *testing.T) {
	p, _ := New(Options{Logger: mdwlog.Discard()})
	_, err := p.Parse("r.parms", "global { a = }\nglobal { b = = }\nbogus\nglobal { c = 1 d }")

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	lines := make([]int, len(se.Errors))
	for i, e := range se.Errors {
		lines[i] = e.Line
	}
	if !slices.Equal(lines, []int{1, 2, 3, 4}) {
		t.Errorf("error lines = %v; want [1 2 3 4]", lines)
	}
}

func TestParser_MaxInputLength(t *testing.T) {
	p, err := New(Options{Logger: mdwlog.Discard(), MaxInputLength: 8})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := p.Parse("big", "global { a = 1 }"); err == nil {
		t.Error("Parse() should reject oversized input")
	}
	if _, err := New(Options{MaxInputLength: -1}); err == nil {
		t.Error("New() should reject a negative limit")
	}
}

func TestEventsStopEarly(t *testing.T) {
	f, err := Parse("s", "global { a = 1 b = 2 c = 3 }")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	count := 0
	for range f.Events() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iteration should stop after break, count = %d", count)
	}
	if (Event{}).Token(5) != "" {
		t.Error("Token() out of range should be empty")
	}
	if CategoryUvmregsOut.String() != "uvmregs_out" || Category(42).String() != "unknown" {
		t.Error("unexpected category names")
	}
}
