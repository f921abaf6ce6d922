// ============================================================================
// ordt - Register Description Compiler
// ============================================================================
//
// Package:     version
// Description: Central version management for the ordt tools
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the ordt tools
const (
	// Compiler version the parameter set belongs to
	Compiler = "1.0.0"

	// Tool versions
	Parms = "1.0.0"
)

// Set at build time via -ldflags "-X github.com/msto63/ordt/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ToolVersion returns the version for a given tool name
func ToolVersion(name string) string {
	switch name {
	case "ordt-parms", "parms":
		return Parms
	default:
		return Compiler
	}
}

// Info describes one build
type Info struct {
	Tool      string
	Version   string
	Compiler  string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns build information for a tool
func Get(tool string) Info {
	return Info{
		Tool:      tool,
		Version:   ToolVersion(tool),
		Compiler:  Compiler,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("%s %s (ordt %s, commit %s, built %s, %s %s)",
		i.Tool, i.Version, i.Compiler, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
