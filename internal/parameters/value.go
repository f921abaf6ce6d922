// File: value.go
// Title: Parameter Values
// Description: Tagged variant holding the value of a control parameter.
//              String and register number values may be unset.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parameters

import (
	"slices"
	"strconv"
	"strings"

	"github.com/msto63/ordt/internal/regnum"
)

// Kind is the declared type of a parameter.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindString
	KindStringList
	KindRegNumber
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindStringList:
		return "list"
	case KindRegNumber:
		return "regnum"
	default:
		return "unknown"
	}
}

// Value is an immutable parameter value of one Kind.
type Value struct {
	kind Kind
	set  bool
	b    bool
	i    int
	s    string
	list []string
	num  *regnum.Number
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, set: true, b: b}
}

// IntValue returns an integer value.
func IntValue(i int) Value {
	return Value{kind: KindInt, set: true, i: i}
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{kind: KindString, set: true, s: s}
}

// UnsetString returns a string value that has not been assigned.
func UnsetString() Value {
	return Value{kind: KindString}
}

// StringListValue returns a list value holding a copy of items.
func StringListValue(items ...string) Value {
	return Value{kind: KindStringList, set: true, list: slices.Clone(items)}
}

// NumberValue returns a register number value; nil yields an unset value.
func NumberValue(n *regnum.Number) Value {
	return Value{kind: KindRegNumber, set: n != nil, num: n}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsSet is false for unset string and register number values.
func (v Value) IsSet() bool {
	return v.set
}

// Bool returns the boolean payload.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer payload.
func (v Value) Int() int {
	return v.i
}

// Str returns the string payload, "" when unset.
func (v Value) Str() string {
	return v.s
}

// List returns a copy of the list payload.
func (v Value) List() []string {
	return slices.Clone(v.list)
}

// Number returns the register number payload, nil when unset.
func (v Value) Number() *regnum.Number {
	return v.num
}

// appended returns a list value with item added at the end.
func (v Value) appended(item string) Value {
	list := make([]string, len(v.list), len(v.list)+1)
	copy(list, v.list)
	return Value{kind: KindStringList, set: true, list: append(list, item)}
}

// Equal reports whether v and other hold the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || v.set != other.set {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindString:
		return v.s == other.s
	case KindStringList:
		return slices.Equal(v.list, other.list)
	case KindRegNumber:
		return !v.set || v.num.String() == other.num.String()
	}
	return false
}

// String renders the value for dumps. Unset values print as <unset>.
func (v Value) String() string {
	if !v.set {
		return "<unset>"
	}
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindString:
		return strconv.Quote(v.s)
	case KindStringList:
		quoted := make([]string, len(v.list))
		for i, item := range v.list {
			quoted[i] = strconv.Quote(item)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case KindRegNumber:
		return v.num.String()
	}
	return ""
}
