// Package error provides the structured error type used across ordt.
//
// Package: error
// Title: ordt Error Handling
// Description: Structured errors with codes, severity, details and the
//              operation that produced them. Parameter loading reports
//              validation failures, syntax errors and missing files through
//              this type so the CLI can map them to exit codes and the
//              logger can render their details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Codes for parameter files, dropped request/user context
//
// Usage:
//
//	err := error.New("parameter file not found").
//		WithCode(error.CodeNotFound).
//		WithOperation("parameters.LoadParameters").
//		WithDetail("file", path)
//
//	if error.HasCode(err, error.CodeSyntax) {
//		os.Exit(8)
//	}
package error
