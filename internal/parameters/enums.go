// File: enums.go
// Title: Enumerated Control Parameters
// Description: Closed value sets for decoder interfaces, block select and
//              child info modes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parameters

// DecoderInterface is the bus shape used to reach a register block.
type DecoderInterface int

const (
	DecoderNone DecoderInterface = iota
	DecoderLeaf
	DecoderSerial8
	DecoderRing8
	DecoderRing16
	DecoderRing32
	DecoderParallel
	DecoderEngine1
)

func (d DecoderInterface) String() string {
	switch d {
	case DecoderNone:
		return "NONE"
	case DecoderLeaf:
		return "LEAF"
	case DecoderSerial8:
		return "SERIAL8"
	case DecoderRing8:
		return "RING8"
	case DecoderRing16:
		return "RING16"
	case DecoderRing32:
		return "RING32"
	case DecoderParallel:
		return "PARALLEL"
	case DecoderEngine1:
		return "ENGINE1"
	default:
		return "UNKNOWN"
	}
}

// BlockSelectMode controls where block select decoding is generated.
type BlockSelectMode int

const (
	BlockSelectInternal BlockSelectMode = iota
	BlockSelectExternal
	BlockSelectAlways
)

func (m BlockSelectMode) String() string {
	switch m {
	case BlockSelectInternal:
		return "INTERNAL"
	case BlockSelectExternal:
		return "EXTERNAL"
	case BlockSelectAlways:
		return "ALWAYS"
	default:
		return "UNKNOWN"
	}
}

// ChildInfoMode selects how child information is emitted.
type ChildInfoMode int

const (
	ChildInfoPerl ChildInfoMode = iota
	ChildInfoModule
)

func (m ChildInfoMode) String() string {
	switch m {
	case ChildInfoPerl:
		return "PERL"
	case ChildInfoModule:
		return "MODULE"
	default:
		return "UNKNOWN"
	}
}

// Accepted spellings. Anything else falls back to the resolver default.
var (
	rootDecoderValues = map[string]DecoderInterface{
		"leaf":    DecoderLeaf,
		"serial8": DecoderSerial8,
		"ring8":   DecoderRing8,
		"ring16":  DecoderRing16,
		"ring32":  DecoderRing32,
	}

	// "paallel" is the accepted spelling for a parallel secondary
	// interface; "parallel" is not recognised here.
	secondaryDecoderValues = map[string]DecoderInterface{
		"leaf":    DecoderLeaf,
		"serial8": DecoderSerial8,
		"ring8":   DecoderRing8,
		"ring16":  DecoderRing16,
		"ring32":  DecoderRing32,
		"paallel": DecoderParallel,
		"engine1": DecoderEngine1,
	}

	blockSelectValues = map[string]BlockSelectMode{
		"internal": BlockSelectInternal,
		"external": BlockSelectExternal,
	}

	childInfoValues = map[string]ChildInfoMode{
		"module": ChildInfoModule,
	}
)

func lookupOr[T any](table map[string]T, key string, fallback T) T {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}
