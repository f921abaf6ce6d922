// File: annotate.go
// Title: Model Annotation Commands
// Description: Deferred property overrides targeted at register or field
//              instances or component types. Commands are captured while
//              parameter files are loaded and applied later by the model
//              annotation pass; paths are stored verbatim.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package annotate

import (
	"fmt"

	mdwstringx "github.com/msto63/ordt/foundation/utils/stringx"
)

// Command names recognised in annotate sections
const (
	CmdSetRegProperty   = "set_reg_property"
	CmdSetFieldProperty = "set_field_property"
)

// Path modes
const (
	ModeInstances  = "instances"
	ModeComponents = "components"
)

// Target is the kind of model element a command applies to.
type Target int

const (
	TargetReg Target = iota
	TargetField
)

func (t Target) String() string {
	switch t {
	case TargetReg:
		return "reg"
	case TargetField:
		return "field"
	default:
		return "unknown"
	}
}

// Command is one captured set-property annotation.
type Command struct {
	Target             Target
	PathUsesComponents bool
	Path               string
	PropertyName       string
	PropertyValue      string
}

// FromTokens builds a Command from the positional children of an
// annotation rule. Double quotes are removed from the property name, the
// property value and the path. ok is false for commands other than the
// two set-property forms.
func FromTokens(cmd, property, value, mode, path string) (Command, bool) {
	var target Target
	switch cmd {
	case CmdSetRegProperty:
		target = TargetReg
	case CmdSetFieldProperty:
		target = TargetField
	default:
		return Command{}, false
	}

	return Command{
		Target:             target,
		PathUsesComponents: mode == ModeComponents,
		Path:               mdwstringx.StripQuotes(path),
		PropertyName:       mdwstringx.StripQuotes(property),
		PropertyValue:      mdwstringx.StripQuotes(value),
	}, true
}

// PathMode returns "components" or "instances".
func (c Command) PathMode() string {
	if c.PathUsesComponents {
		return ModeComponents
	}
	return ModeInstances
}

// Name returns the command keyword that produces c.
func (c Command) Name() string {
	if c.Target == TargetField {
		return CmdSetFieldProperty
	}
	return CmdSetRegProperty
}

// String renders the command in parameter file syntax.
func (c Command) String() string {
	return fmt.Sprintf("%s %q = %q %s %q", c.Name(), c.PropertyName, c.PropertyValue, c.PathMode(), c.Path)
}
