// File: resolver_test.go
// Title: Legacy and Enum Resolver Tests
// Description: Tests for enumerated parameters, fallbacks and deprecated
//              aliases.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package parameters

import (
	"fmt"
	"testing"

	mdwerror "github.com/msto63/ordt/foundation/core/error"
	mdwlog "github.com/msto63/ordt/foundation/core/log"
)

func newTestConfig(t *testing.T, strict bool) (*Config, *Recorder) {
	t.Helper()
	rec := NewRecorder(nil)
	c, err := New(Options{Strict: strict, Sink: rec, Logger: mdwlog.Discard()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, rec
}

func TestLegacyDefaults(t *testing.T) {
	c, _ := newTestConfig(t, false)

	if c.RootDecoderInterface() != DecoderLeaf {
		t.Errorf("root decoder = %s; want LEAF", c.RootDecoderInterface())
	}
	if c.SecondaryDecoderInterface() != DecoderNone {
		t.Errorf("secondary decoder = %s; want NONE", c.SecondaryDecoderInterface())
	}
	if c.BlockSelectMode() != BlockSelectExternal {
		t.Errorf("block select = %s; want EXTERNAL", c.BlockSelectMode())
	}
	if c.ChildInfoMode() != ChildInfoPerl {
		t.Errorf("child info = %s; want PERL", c.ChildInfoMode())
	}
}

func TestResolver(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		get        func(c *Config) fmt.Stringer
		want       string
		advisories int
	}{
		{"root_decoder_interface", "ring16", func(c *Config) fmt.Stringer { return c.RootDecoderInterface() }, "RING16", 0},
		{"root_decoder_interface", "serial8", func(c *Config) fmt.Stringer { return c.RootDecoderInterface() }, "SERIAL8", 0},
		{"root_decoder_interface", "parallel", func(c *Config) fmt.Stringer { return c.RootDecoderInterface() }, "PARALLEL", 0},
		{"root_decoder_interface", "engine1", func(c *Config) fmt.Stringer { return c.RootDecoderInterface() }, "PARALLEL", 0},
		{"root_has_leaf_interface", "true", func(c *Config) fmt.Stringer { return c.RootDecoderInterface() }, "LEAF", 1},
		{"root_has_leaf_interface", "false", func(c *Config) fmt.Stringer { return c.RootDecoderInterface() }, "PARALLEL", 1},
		{"secondary_decoder_interface", "ring32", func(c *Config) fmt.Stringer { return c.SecondaryDecoderInterface() }, "RING32", 0},
		{"secondary_decoder_interface", "engine1", func(c *Config) fmt.Stringer { return c.SecondaryDecoderInterface() }, "ENGINE1", 0},
		{"secondary_decoder_interface", "paallel", func(c *Config) fmt.Stringer { return c.SecondaryDecoderInterface() }, "PARALLEL", 0},
		{"secondary_decoder_interface", "parallel", func(c *Config) fmt.Stringer { return c.SecondaryDecoderInterface() }, "NONE", 0},
		{"block_select_mode", "internal", func(c *Config) fmt.Stringer { return c.BlockSelectMode() }, "INTERNAL", 0},
		{"block_select_mode", "external", func(c *Config) fmt.Stringer { return c.BlockSelectMode() }, "EXTERNAL", 0},
		{"block_select_mode", "foo", func(c *Config) fmt.Stringer { return c.BlockSelectMode() }, "ALWAYS", 0},
		{"use_external_select", "true", func(c *Config) fmt.Stringer { return c.BlockSelectMode() }, "EXTERNAL", 1},
		{"use_external_select", "false", func(c *Config) fmt.Stringer { return c.BlockSelectMode() }, "INTERNAL", 1},
		{"child_info_mode", "module", func(c *Config) fmt.Stringer { return c.ChildInfoMode() }, "MODULE", 0},
		{"child_info_mode", "perl", func(c *Config) fmt.Stringer { return c.ChildInfoMode() }, "PERL", 0},
		{"child_info_mode", "MODULE", func(c *Config) fmt.Stringer { return c.ChildInfoMode() }, "PERL", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			c, rec := newTestConfig(t, false)
			c.Assign(tt.name, tt.value)

			if got := tt.get(c).String(); got != tt.want {
				t.Errorf("resolved to %s; want %s", got, tt.want)
			}
			if n := rec.Count(SeverityAdvisory); n != tt.advisories {
				t.Errorf("advisories = %d; want %d", n, tt.advisories)
			}
			if n := rec.Count(SeverityError); n != 0 {
				t.Errorf("errors = %d; want 0", n)
			}
		})
	}
}

func TestDeprecationAdvisories(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"root_has_leaf_interface", "Use of control parameter 'root_has_leaf_interface' is deprecated. Use 'root_decoder_interface = leaf' instead."},
		{"use_external_select", "Use of control parameter 'use_external_select' is deprecated. Use 'block_select_mode' instead."},
		{"external_decode_is_root", "Use of control parameter 'external_decode_is_root' is deprecated."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestConfig(t, false)
			before := c.Snapshot()

			c.Assign(tt.name, "not-a-boolean")

			advisories := rec.Advisories()
			if len(advisories) != 1 {
				t.Fatalf("advisories = %d; want 1", len(advisories))
			}
			d := advisories[0]
			if d.Message != tt.message || d.Code != mdwerror.CodeDeprecated || d.Parameter != tt.name {
				t.Errorf("advisory = %+v", d)
			}

			if tt.name == "external_decode_is_root" {
				after := c.Snapshot()
				for i := range before {
					if before[i] != after[i] {
						t.Errorf("external_decode_is_root changed %s", after[i].Name)
					}
				}
			}
		})
	}
}

func TestUnknownNames(t *testing.T) {
	c, rec := newTestConfig(t, false)
	c.Assign("leaf_adress_size", "48")
	if len(rec.All()) != 0 {
		t.Errorf("unknown names should be ignored silently, got %v", rec.All())
	}
	if c.LeafAddressSize() != 40 {
		t.Error("unknown name must not change any parameter")
	}

	strict, rec := newTestConfig(t, true)
	if !strict.Strict() {
		t.Fatal("Strict() should be true")
	}
	strict.Assign("leaf_adress_size", "48")
	errs := rec.Errors()
	if len(errs) != 1 || errs[0].Code != mdwerror.CodeUnknownParameter {
		t.Fatalf("strict mode errors = %v", errs)
	}
	if errs[0].Message != "unknown control parameter 'leaf_adress_size'" {
		t.Errorf("message = %q", errs[0].Message)
	}

	strict.Assign("block_select_mode", "internal")
	if len(rec.Errors()) != 1 {
		t.Error("resolver names are known in strict mode")
	}
	if !IsLegacyName("child_info_mode") || IsLegacyName("leaf_address_size") {
		t.Error("IsLegacyName() mismatch")
	}
}
