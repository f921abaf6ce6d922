// File: resolver.go
// Title: Legacy and Enumerated Parameter Resolver
// Description: Handles assignments to names outside the generic registry:
//              enumerated parameters and deprecated aliases. Consulted only
//              after a registry miss.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parameters

// legacyState holds the enumerated parameters.
type legacyState struct {
	rootDecoder      DecoderInterface
	secondaryDecoder DecoderInterface
	blockSelect      BlockSelectMode
	childInfo        ChildInfoMode
}

func defaultLegacyState() legacyState {
	return legacyState{
		rootDecoder:      DecoderLeaf,
		secondaryDecoder: DecoderNone,
		blockSelect:      BlockSelectExternal,
		childInfo:        ChildInfoPerl,
	}
}

// legacyHandler applies value and returns a deprecation advisory, or "".
type legacyHandler func(s *legacyState, value string) string

var legacyHandlers = map[string]legacyHandler{
	"root_has_leaf_interface": func(s *legacyState, value string) string {
		s.rootDecoder = DecoderParallel
		if value == "true" {
			s.rootDecoder = DecoderLeaf
		}
		return "Use of control parameter 'root_has_leaf_interface' is deprecated. Use 'root_decoder_interface = leaf' instead."
	},
	"root_decoder_interface": func(s *legacyState, value string) string {
		s.rootDecoder = lookupOr(rootDecoderValues, value, DecoderParallel)
		return ""
	},
	"secondary_decoder_interface": func(s *legacyState, value string) string {
		s.secondaryDecoder = lookupOr(secondaryDecoderValues, value, DecoderNone)
		return ""
	},
	"use_external_select": func(s *legacyState, value string) string {
		s.blockSelect = BlockSelectInternal
		if value == "true" {
			s.blockSelect = BlockSelectExternal
		}
		return "Use of control parameter 'use_external_select' is deprecated. Use 'block_select_mode' instead."
	},
	"block_select_mode": func(s *legacyState, value string) string {
		s.blockSelect = lookupOr(blockSelectValues, value, BlockSelectAlways)
		return ""
	},
	"child_info_mode": func(s *legacyState, value string) string {
		s.childInfo = lookupOr(childInfoValues, value, ChildInfoPerl)
		return ""
	},
	"external_decode_is_root": func(*legacyState, string) string {
		return "Use of control parameter 'external_decode_is_root' is deprecated."
	},
}

// IsLegacyName reports whether name is handled by the resolver.
func IsLegacyName(name string) bool {
	_, ok := legacyHandlers[name]
	return ok
}
