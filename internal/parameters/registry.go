// File: registry.go
// Title: Parameter Registry
// Description: Name-keyed store of the generic control parameters. It is
//              populated once with the compiled-in defaults; entries are
//              never added or removed afterwards.
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

	"github.com/msto63/ordt/internal/regnum"
)

// Registry maps parameter names to parameters and keeps declaration order.
type Registry struct {
	params map[string]*Parameter
	order  []*Parameter
}

func newRegistry() *Registry {
	defaults := defaultParameters()
	r := &Registry{
		params: make(map[string]*Parameter, len(defaults)),
		order:  make([]*Parameter, 0, len(defaults)),
	}
	for _, p := range defaults {
		if _, exists := r.params[p.name]; exists {
			panic(fmt.Sprintf("parameters: duplicate parameter %q", p.name))
		}
		r.params[p.name] = p
		r.order = append(r.order, p)
	}
	return r
}

// Lookup returns the named parameter, if registered.
func (r *Registry) Lookup(name string) (*Parameter, bool) {
	p, ok := r.params[name]
	return p, ok
}

// Get returns the named parameter. Unknown names are a programming error
// and panic.
func (r *Registry) Get(name string) *Parameter {
	p, ok := r.params[name]
	if !ok {
		panic(fmt.Sprintf("parameters: unknown parameter %q", name))
	}
	return p
}

// Set assigns text to the named parameter. found is false for names not in
// the registry; err is the validation failure, if any.
func (r *Registry) Set(name, text string) (found bool, err error) {
	p, ok := r.params[name]
	if !ok {
		return false, nil
	}
	return true, p.Set(text)
}

// Parameters returns all parameters in declaration order.
func (r *Registry) Parameters() []*Parameter {
	return slices.Clone(r.order)
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return len(r.order)
}

// Typed accessors. Asking for the wrong kind is a programming error.

func (r *Registry) typed(name string, kind Kind) Value {
	p := r.Get(name)
	if p.kind != kind {
		panic(fmt.Sprintf("parameters: %q is %s, not %s", name, p.kind, kind))
	}
	return p.value
}

// Bool returns a boolean parameter.
func (r *Registry) Bool(name string) bool {
	return r.typed(name, KindBool).Bool()
}

// Int returns an integer parameter.
func (r *Registry) Int(name string) int {
	return r.typed(name, KindInt).Int()
}

// String returns a string parameter and whether it is set.
func (r *Registry) String(name string) (string, bool) {
	v := r.typed(name, KindString)
	return v.Str(), v.IsSet()
}

// StringList returns a copy of a list parameter.
func (r *Registry) StringList(name string) []string {
	return r.typed(name, KindStringList).List()
}

// HasStringList reports whether a list parameter is non-empty.
func (r *Registry) HasStringList(name string) bool {
	return len(r.typed(name, KindStringList).list) > 0
}

// Number returns a register number parameter, nil when unset.
func (r *Registry) Number(name string) *regnum.Number {
	return r.typed(name, KindRegNumber).Number()
}
