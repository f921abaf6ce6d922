// File: snapshot.go
// Title: Parameter Snapshot
// Description: Flat view of every parameter, generic and enumerated, for
//              diagnostic dumps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parameters

import (
	"github.com/msto63/ordt/internal/extparms"
)

// Entry is one row of a snapshot.
type Entry struct {
	Category extparms.Category
	Name     string
	Kind     string
	Value    string
	Default  string
	Changed  bool
}

// Snapshot lists the registry in declaration order followed by the
// enumerated parameters.
func (c *Config) Snapshot() []Entry {
	entries := make([]Entry, 0, c.registry.Len()+4)
	for _, p := range c.registry.order {
		entries = append(entries, Entry{
			Category: p.category,
			Name:     p.name,
			Kind:     p.kind.String(),
			Value:    p.value.String(),
			Default:  p.def.String(),
			Changed:  p.Changed(),
		})
	}

	def := defaultLegacyState()
	entries = append(entries,
		enumEntry("root_decoder_interface", c.legacy.rootDecoder, def.rootDecoder),
		enumEntry("secondary_decoder_interface", c.legacy.secondaryDecoder, def.secondaryDecoder),
		enumEntry("block_select_mode", c.legacy.blockSelect, def.blockSelect),
		enumEntry("child_info_mode", c.legacy.childInfo, def.childInfo),
	)
	return entries
}

func enumEntry[T interface {
	comparable
	String() string
}](name string, value, def T) Entry {
	return Entry{
		Category: extparms.CategorySystemVerilogOut,
		Name:     name,
		Kind:     "enum",
		Value:    value.String(),
		Default:  def.String(),
		Changed:  value != def,
	}
}
