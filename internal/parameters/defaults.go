// File: defaults.go
// Title: Compiled-in Parameter Defaults
// Description: The complete set of generic control parameters with their
//              defaults, in declaration order.
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
	"github.com/msto63/ordt/internal/regnum"
)

// MaxInternalRegReps is the largest replication count generated internally.
// It is not settable and seeds external_replication_threshold.
const MaxInternalRegReps = 4096

func defaultParameters() []*Parameter {
	var (
		global   = extparms.CategoryGlobal
		rdlIn    = extparms.CategoryRdlIn
		jspecIn  = extparms.CategoryJspecIn
		svOut    = extparms.CategorySystemVerilogOut
		rdlOut   = extparms.CategoryRdlOut
		jspecOut = extparms.CategoryJspecOut
		rlOut    = extparms.CategoryReglistOut
		uvmOut   = extparms.CategoryUvmregsOut
		benchOut = extparms.CategoryBenchOut
	)

	b := func(c extparms.Category, name string, def bool) *Parameter {
		return newParameter(c, name, BoolValue(def))
	}
	i := func(c extparms.Category, name string, def int) *Parameter {
		return newParameter(c, name, IntValue(def))
	}
	s := func(c extparms.Category, name string, def string) *Parameter {
		return newParameter(c, name, StringValue(def))
	}
	list := func(c extparms.Category, name string) *Parameter {
		return newParameter(c, name, StringListValue())
	}
	num := func(c extparms.Category, name string, def *regnum.Number) *Parameter {
		return newParameter(c, name, NumberValue(def))
	}

	return []*Parameter{
		// global
		i(global, "min_data_size", 32).withValidator(validateMinDataSize),
		num(global, "base_address", regnum.New(0)),
		num(global, "secondary_base_address", nil),
		num(global, "secondary_low_address", nil),
		num(global, "secondary_high_address", nil),
		b(global, "secondary_on_child_addrmaps", false),
		b(global, "use_js_address_alignment", true),
		b(global, "suppress_alignment_warnings", false),
		s(global, "default_base_map_name", ""),
		b(global, "allow_unordered_addresses", false),
		i(global, "debug_mode", 0).withValidator(validateDebugMode).withAdvisor(adviseDebugMode),

		// rdl input
		list(rdlIn, "process_component"),
		b(rdlIn, "resolve_reg_category", false),
		b(rdlIn, "restrict_defined_property_names", true),

		// jspec input
		list(jspecIn, "process_typedef"),
		b(jspecIn, "root_regset_is_addrmap", false),
		b(jspecIn, "root_is_external_decode", true),
		i(jspecIn, "external_replication_threshold", MaxInternalRegReps),

		// systemverilog output
		i(svOut, "leaf_address_size", 40),
		b(svOut, "base_addr_is_parameter", false),
		s(svOut, "module_tag", ""),
		b(svOut, "use_gated_logic_clock", false),
		i(svOut, "gated_logic_access_delay", 6),
		b(svOut, "export_start_end", false),
		b(svOut, "always_generate_iwrap", false),
		b(svOut, "suppress_no_reset_warnings", false),
		b(svOut, "generate_child_addrmaps", false),
		i(svOut, "ring_inter_node_delay", 0),
		b(svOut, "bbv5_timeout_input", false),
		b(svOut, "include_default_coverage", false),

		// rdl output
		b(rdlOut, "root_component_is_instanced", true),
		b(rdlOut, "output_jspec_attributes", false),

		// jspec output
		b(jspecOut, "root_regset_is_instanced", true),
		list(jspecOut, "add_js_include"),
		b(jspecOut, "no_root_enum_defs", false),

		// reglist output
		b(rlOut, "display_external_regs", true),
		b(rlOut, "show_reg_type", false),
		newParameter(rlOut, "match_instance", UnsetString()),
		b(rlOut, "show_fields", false),

		// uvmregs output
		b(uvmOut, "suppress_no_category_warnings", false),
		i(uvmOut, "is_mem_threshold", 1000),
		b(uvmOut, "include_address_coverage", false),
		i(uvmOut, "max_reg_coverage_bins", 128),

		// bench output
		list(benchOut, "add_test_command"),
		b(benchOut, "generate_external_regs", false),
		b(benchOut, "only_output_dut_instances", false),
		i(benchOut, "total_test_time", 5000),
	}
}
