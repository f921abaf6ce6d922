// File: param.go
// Title: Typed Control Parameters
// Description: A named, typed parameter that validates assignment text
//              before replacing its value. Entries that need more than type
//              coercion carry their own validator and advisory functions.
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
	"strconv"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
	mdwstringx "github.com/msto63/ordt/foundation/utils/stringx"
	"github.com/msto63/ordt/internal/extparms"
	"github.com/msto63/ordt/internal/regnum"
)

// Validator converts assignment text into the next value of p. It replaces
// the kind's default coercion for the entry it is attached to.
type Validator func(p *Parameter, text string) (Value, error)

// Advisor returns an advisory message for a freshly assigned value, or "".
type Advisor func(v Value) string

// Parameter is a named control parameter.
type Parameter struct {
	name     string
	category extparms.Category
	kind     Kind
	value    Value
	def      Value
	validate Validator
	advise   Advisor
}

func newParameter(category extparms.Category, name string, def Value) *Parameter {
	return &Parameter{name: name, category: category, kind: def.Kind(), value: def, def: def}
}

// withValidator attaches a bespoke validator
func (p *Parameter) withValidator(v Validator) *Parameter {
	p.validate = v
	return p
}

// withAdvisor attaches an advisory check run after successful assignment
func (p *Parameter) withAdvisor(a Advisor) *Parameter {
	p.advise = a
	return p
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Category returns the file section the parameter belongs to.
func (p *Parameter) Category() extparms.Category { return p.category }

// Kind returns the declared kind.
func (p *Parameter) Kind() Kind { return p.kind }

// Get returns the current value.
func (p *Parameter) Get() Value { return p.value }

// Default returns the compiled-in default.
func (p *Parameter) Default() Value { return p.def }

// Changed reports whether the current value differs from the default.
func (p *Parameter) Changed() bool { return !p.value.Equal(p.def) }

// Set parses text into the parameter's kind and replaces the value. On
// failure the value is left unchanged and a CodeValidationFailed error is
// returned.
func (p *Parameter) Set(text string) error {
	var (
		next Value
		err  error
	)
	if p.validate != nil {
		next, err = p.validate(p, text)
	} else {
		next, err = coerce(p.kind, p.value, text)
	}
	if err != nil {
		return validationError(p, text, err)
	}
	p.value = next
	return nil
}

// Advisory returns the advisory for the current value, if any.
func (p *Parameter) Advisory() string {
	if p.advise == nil {
		return ""
	}
	return p.advise(p.value)
}

// coerce applies the uniform per-kind parsing rules
func coerce(kind Kind, current Value, text string) (Value, error) {
	switch kind {
	case KindBool:
		switch text {
		case "true":
			return BoolValue(true), nil
		case "false":
			return BoolValue(false), nil
		}
		return Value{}, fmt.Errorf("invalid boolean %q (expected true or false)", text)

	case KindInt:
		i, err := strconv.Atoi(text)
		if err != nil {
			return Value{}, fmt.Errorf("invalid integer %q", text)
		}
		return IntValue(i), nil

	case KindString:
		return StringValue(mdwstringx.TrimQuotes(text)), nil

	case KindStringList:
		return current.appended(mdwstringx.TrimQuotes(text)), nil

	case KindRegNumber:
		n, err := regnum.Parse(mdwstringx.TrimQuotes(text))
		if err != nil {
			return Value{}, err
		}
		return NumberValue(n), nil
	}
	return Value{}, fmt.Errorf("unsupported parameter kind %s", kind)
}

// validationError wraps cause with the parameter context. Causes that are
// already coded errors keep their message.
func validationError(p *Parameter, text string, cause error) error {
	var e *mdwerror.Error
	if coded, ok := cause.(*mdwerror.Error); ok && coded.Code() == mdwerror.CodeValidationFailed {
		e = coded
	} else {
		e = mdwerror.Wrap(cause, fmt.Sprintf("invalid value for parameter '%s'", p.name)).
			WithCode(mdwerror.CodeValidationFailed)
	}
	return e.WithDetail("parameter", p.name).
		WithDetail("input", text).
		WithOperation("parameters.Set")
}

// Bespoke validators

const (
	minDataSizeLow  = 32
	minDataSizeHigh = 1024
)

// validateMinDataSize accepts powers of two in [32,1024]. A non-integer
// input reports the value currently in effect, not the rejected text.
func validateMinDataSize(p *Parameter, text string) (Value, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return Value{}, mdwerror.Newf("invalid minimum data size specified (%d).", p.value.Int()).
			WithCode(mdwerror.CodeValidationFailed).
			WithDetail("current", p.value.Int())
	}
	if !isPowerOfTwo(n) || n < minDataSizeLow || n > minDataSizeHigh {
		return Value{}, mdwerror.Newf("invalid minimum data size (%d).  Must be power of 2 and >=32.", n).
			WithCode(mdwerror.CodeValidationFailed).
			WithDetail("current", p.value.Int())
	}
	return IntValue(n), nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// validateDebugMode accepts any integer. Like min_data_size, a non-integer
// input reports the value currently in effect.
func validateDebugMode(p *Parameter, text string) (Value, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return Value{}, mdwerror.Newf("invalid debug_mode specified (%d).", p.value.Int()).
			WithCode(mdwerror.CodeValidationFailed).
			WithDetail("current", p.value.Int())
	}
	return IntValue(n), nil
}

// adviseDebugMode flags any non-zero debug mode.
func adviseDebugMode(v Value) string {
	if v.Int() != 0 {
		return "debug_mode parameter is set.  Non-standard ordt behavior can occur."
	}
	return ""
}
