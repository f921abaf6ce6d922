// File: getters.go
// Title: Typed Parameter Getters
// Description: One accessor per control parameter for the compiler and its
//              generators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parameters

import "github.com/msto63/ordt/internal/regnum"

// global

// MinDataSize returns the minimum data width in bits.
func (c *Config) MinDataSize() int {
	return c.registry.Int("min_data_size")
}

// PrimaryBaseAddress returns the root decoder base address.
func (c *Config) PrimaryBaseAddress() *regnum.Number {
	return c.registry.Number("base_address")
}

// SecondaryBaseAddress is nil unless a secondary interface base is set.
func (c *Config) SecondaryBaseAddress() *regnum.Number {
	return c.registry.Number("secondary_base_address")
}

func (c *Config) HasSecondaryBaseAddress() bool {
	return c.SecondaryBaseAddress() != nil
}

// SecondaryLowAddress is the lowest address routed to the secondary interface.
func (c *Config) SecondaryLowAddress() *regnum.Number {
	return c.registry.Number("secondary_low_address")
}

func (c *Config) HasSecondaryLowAddress() bool {
	return c.SecondaryLowAddress() != nil
}

// SecondaryHighAddress is the highest address routed to the secondary interface.
func (c *Config) SecondaryHighAddress() *regnum.Number {
	return c.registry.Number("secondary_high_address")
}

func (c *Config) HasSecondaryHighAddress() bool {
	return c.SecondaryHighAddress() != nil
}

func (c *Config) SecondaryOnChildAddrmaps() bool {
	return c.registry.Bool("secondary_on_child_addrmaps")
}

func (c *Config) UseJsAddressAlignment() bool {
	return c.registry.Bool("use_js_address_alignment")
}

func (c *Config) SuppressAlignmentWarnings() bool {
	return c.registry.Bool("suppress_alignment_warnings")
}

func (c *Config) AllowUnorderedAddresses() bool {
	return c.registry.Bool("allow_unordered_addresses")
}

func (c *Config) DefaultBaseMapName() string {
	s, _ := c.registry.String("default_base_map_name")
	return s
}

// DebugMode returns the debug mode; any non-zero value enables
// non-standard behavior.
func (c *Config) DebugMode() int {
	return c.registry.Int("debug_mode")
}

// MaxInternalRegReps returns the compiled-in replication limit.
func (c *Config) MaxInternalRegReps() int {
	return MaxInternalRegReps
}

// rdl input

func (c *Config) HasRdlProcessComponents() bool {
	return c.registry.HasStringList("process_component")
}

// RdlProcessComponents lists the components to process, in assignment order.
func (c *Config) RdlProcessComponents() []string {
	return c.registry.StringList("process_component")
}

func (c *Config) RdlResolveRegCategory() bool {
	return c.registry.Bool("resolve_reg_category")
}

func (c *Config) RdlRestrictDefinedPropertyNames() bool {
	return c.registry.Bool("restrict_defined_property_names")
}

// jspec input

func (c *Config) HasJspecProcessTypedefs() bool {
	return c.registry.HasStringList("process_typedef")
}

func (c *Config) JspecProcessTypedefs() []string {
	return c.registry.StringList("process_typedef")
}

func (c *Config) JspecRootRegsetIsAddrmap() bool {
	return c.registry.Bool("root_regset_is_addrmap")
}

func (c *Config) JspecRootIsExternalDecode() bool {
	return c.registry.Bool("root_is_external_decode")
}

func (c *Config) JspecExternalReplicationThreshold() int {
	return c.registry.Int("external_replication_threshold")
}

// systemverilog output

// LeafAddressSize returns the leaf interface address width.
func (c *Config) LeafAddressSize() int {
	return c.registry.Int("leaf_address_size")
}

func (c *Config) SysVerBaseAddrIsParameter() bool {
	return c.registry.Bool("base_addr_is_parameter")
}

func (c *Config) SysVerModuleTag() string {
	s, _ := c.registry.String("module_tag")
	return s
}

func (c *Config) SysVerUseGatedLogicClock() bool {
	return c.registry.Bool("use_gated_logic_clock")
}

func (c *Config) SysVerGatedLogicAccessDelay() int {
	return c.registry.Int("gated_logic_access_delay")
}

func (c *Config) SysVerExportStartEnd() bool {
	return c.registry.Bool("export_start_end")
}

func (c *Config) SysVerAlwaysGenerateIwrap() bool {
	return c.registry.Bool("always_generate_iwrap")
}

func (c *Config) SysVerSuppressNoResetWarnings() bool {
	return c.registry.Bool("suppress_no_reset_warnings")
}

func (c *Config) SysVerGenerateChildAddrmaps() bool {
	return c.registry.Bool("generate_child_addrmaps")
}

func (c *Config) SysVerRingInterNodeDelay() int {
	return c.registry.Int("ring_inter_node_delay")
}

func (c *Config) SysVerBBV5TimeoutInput() bool {
	return c.registry.Bool("bbv5_timeout_input")
}

func (c *Config) SysVerIncludeDefaultCoverage() bool {
	return c.registry.Bool("include_default_coverage")
}

// RootDecoderInterface is the primary decoder interface (default LEAF).
func (c *Config) RootDecoderInterface() DecoderInterface {
	return c.legacy.rootDecoder
}

// SecondaryDecoderInterface is the secondary decoder interface (default NONE).
func (c *Config) SecondaryDecoderInterface() DecoderInterface {
	return c.legacy.secondaryDecoder
}

// BlockSelectMode is the block select generation mode (default EXTERNAL).
func (c *Config) BlockSelectMode() BlockSelectMode {
	return c.legacy.blockSelect
}

// ChildInfoMode is the child info output mode (default PERL).
func (c *Config) ChildInfoMode() ChildInfoMode {
	return c.legacy.childInfo
}

// rdl output

func (c *Config) RdlRootComponentIsInstanced() bool {
	return c.registry.Bool("root_component_is_instanced")
}

func (c *Config) RdlOutputJspecAttributes() bool {
	return c.registry.Bool("output_jspec_attributes")
}

// jspec output

func (c *Config) JspecRootRegsetIsInstanced() bool {
	return c.registry.Bool("root_regset_is_instanced")
}

// JspecIncludeFiles lists the files to include in jspec output.
func (c *Config) JspecIncludeFiles() []string {
	return c.registry.StringList("add_js_include")
}

func (c *Config) JspecNoRootEnumDefs() bool {
	return c.registry.Bool("no_root_enum_defs")
}

// reglist output

func (c *Config) ReglistDisplayExternalRegs() bool {
	return c.registry.Bool("display_external_regs")
}

func (c *Config) ReglistShowRegType() bool {
	return c.registry.Bool("show_reg_type")
}

// ReglistMatchInstance returns the instance filter and whether one is set.
func (c *Config) ReglistMatchInstance() (string, bool) {
	return c.registry.String("match_instance")
}

func (c *Config) ReglistShowFields() bool {
	return c.registry.Bool("show_fields")
}

// uvmregs output

func (c *Config) UvmregsSuppressNoCategoryWarnings() bool {
	return c.registry.Bool("suppress_no_category_warnings")
}

func (c *Config) UvmregsIsMemThreshold() int {
	return c.registry.Int("is_mem_threshold")
}

func (c *Config) UvmregsIncludeAddressCoverage() bool {
	return c.registry.Bool("include_address_coverage")
}

func (c *Config) UvmregsMaxRegCoverageBins() int {
	return c.registry.Int("max_reg_coverage_bins")
}

// bench output

func (c *Config) HasTestCommands() bool {
	return c.registry.HasStringList("add_test_command")
}

// TestCommands lists the bench test commands, in assignment order.
func (c *Config) TestCommands() []string {
	return c.registry.StringList("add_test_command")
}

func (c *Config) BenchGenerateExternalRegs() bool {
	return c.registry.Bool("generate_external_regs")
}

func (c *Config) BenchOnlyOutputDutInstances() bool {
	return c.registry.Bool("only_output_dut_instances")
}

func (c *Config) BenchTotalTestTime() int {
	return c.registry.Int("total_test_time")
}
