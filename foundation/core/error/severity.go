// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Severity decides the log
//              level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for parameter codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks diagnostics that never stop loading, such as an
	// invalid parameter value
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a specific code
	SeverityMedium

	// SeverityHigh marks file-level failures that abort loading
	SeverityHigh

	// SeverityCritical marks internal failures
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeNotFound, CodeIOError, CodeSyntax, CodeInvalidConfig, CodeMissingConfig:
		return SeverityHigh

	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange,
		CodeUnknownParameter, CodeDeprecated, CodeNonStandard, CodeDefaultsUsed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
