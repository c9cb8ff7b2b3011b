// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              uncertainty library, its configuration layer and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Added numeric domain codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Numeric computation
	CodeDomain          Code = "DOMAIN"
	CodeDivisionByZero  Code = "DIVISION_BY_ZERO"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Parsing and validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeDomain, CodeDivisionByZero, CodeValueOutOfRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDomain, CodeDivisionByZero, CodeValueOutOfRange:
		return "numeric"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation":
		return 2
	case "configuration":
		return 3
	case "numeric":
		return 4
	default:
		return 1
	}
}
