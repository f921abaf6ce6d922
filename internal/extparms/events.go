// File: events.go
// Title: Parameter File Events
// Description: The flat event stream a parsed parameter file exposes to its
//              consumers: one event per parameter assignment or annotation
//              command, in source order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package extparms

import (
	"fmt"
	"iter"
	"strings"
)

// EventKind distinguishes assignments from annotation commands.
type EventKind int

const (
	EventAssign EventKind = iota
	EventAnnotation
)

func (k EventKind) String() string {
	switch k {
	case EventAssign:
		return "assign"
	case EventAnnotation:
		return "annotation"
	default:
		return "unknown"
	}
}

// Category is the file section an event came from.
type Category int

const (
	CategoryGlobal Category = iota
	CategoryRdlIn
	CategoryJspecIn
	CategorySystemVerilogOut
	CategoryRdlOut
	CategoryJspecOut
	CategoryReglistOut
	CategoryUvmregsOut
	CategoryBenchOut
	CategoryAnnotate
)

var categoryNames = map[Category]string{
	CategoryGlobal:           "global",
	CategoryRdlIn:            "rdl_in",
	CategoryJspecIn:          "jspec_in",
	CategorySystemVerilogOut: "systemverilog_out",
	CategoryRdlOut:           "rdl_out",
	CategoryJspecOut:         "jspec_out",
	CategoryReglistOut:       "reglist_out",
	CategoryUvmregsOut:       "uvmregs_out",
	CategoryBenchOut:         "bench_out",
	CategoryAnnotate:         "annotate",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Section header keywords
var (
	inputSections = map[string]Category{
		"rdl":   CategoryRdlIn,
		"jspec": CategoryJspecIn,
	}
	outputSections = map[string]Category{
		"systemverilog": CategorySystemVerilogOut,
		"rdl":           CategoryRdlOut,
		"jspec":         CategoryJspecOut,
		"reglist":       CategoryReglistOut,
		"uvmregs":       CategoryUvmregsOut,
		"bench":         CategoryBenchOut,
	}
)

// Event is one matched grammar rule. Tokens holds the rule's child tokens
// as source text, quotes included:
//
//	assign:     name "=" value
//	annotation: command property "=" value mode path
type Event struct {
	Kind     EventKind
	Category Category
	Tokens   []string
	Line     int
}

// Token returns child i, or "" when the rule has fewer children.
func (e Event) Token(i int) string {
	if i < 0 || i >= len(e.Tokens) {
		return ""
	}
	return e.Tokens[i]
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s line %d: %s", e.Category, e.Kind, e.Line, strings.Join(e.Tokens, " "))
}

// File is a successfully parsed parameter file.
type File struct {
	Source string
	events []Event
}

// Events returns the file's events in source order.
func (f *File) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, e := range f.events {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of events.
func (f *File) Len() int {
	return len(f.events)
}
