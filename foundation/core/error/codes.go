// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures while
//              loading and validating control parameters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Replaced service codes with parameter-file codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// File handling
	CodeNotFound Code = "NOT_FOUND"
	CodeIOError  Code = "IO_ERROR"
	CodeSyntax   Code = "SYNTAX"

	// Parameter assignment
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeUnknownParameter Code = "UNKNOWN_PARAMETER"
	CodeDeprecated       Code = "DEPRECATED"
	CodeNonStandard      Code = "NON_STANDARD"
	CodeDefaultsUsed     Code = "DEFAULTS_USED"

	// Tool configuration
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeMissingConfig Code = "MISSING_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeNotFound, CodeIOError, CodeSyntax,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeUnknownParameter, CodeDeprecated,
		CodeNonStandard, CodeDefaultsUsed,
		CodeInvalidConfig, CodeMissingConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNotFound, CodeIOError, CodeSyntax:
		return "file"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeUnknownParameter, CodeDeprecated,
		CodeNonStandard, CodeDefaultsUsed:
		return "parameter"
	case CodeInvalidConfig, CodeMissingConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsFatal reports whether an error with this code must stop parameter loading.
func (c Code) IsFatal() bool {
	return c.Category() == "file" || c.Category() == "configuration"
}
