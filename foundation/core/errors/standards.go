// File: standards.go
// Title: Standard Error Constructors
// Description: Constructors for the failure classes shared by all errc
//              modules, plus helpers to read module/operation back out of an
//              error.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12

package errors

import (
	"fmt"

	errcerr "github.com/msto63/errc/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleUncertain = "uncertain"
	ModuleErrmath   = "errmath"
	ModuleConfig    = "config"
	ModuleCalc      = "calc"
	ModuleCLI       = "cli"
)

// IndexOutOfRange reports component access with an index other than 0 or 1.
func IndexOutOfRange(module, operation string, index int) *errcerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("index %d out of range: must be 0 (value) or 1 (error)", index).
		Code(errcerr.CodeValueOutOfRange).
		Detail("index", index).
		Detail("min", 0).
		Detail("max", 1).
		Build()
}

// InvalidConfig reports a rejected configuration value.
func InvalidConfig(module, operation, key string, value interface{}, reason string) *errcerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid configuration %s=%v: %s", key, value, reason).
		Code(errcerr.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// DomainError reports a result or argument outside the mathematical domain
// of an operation, typically a NaN or infinite component.
func DomainError(module, operation string, value interface{}, reason string) *errcerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("domain error: %s", reason).
		Code(errcerr.CodeDomain).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *errcerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(errcerr.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string, cause error) *errcerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format %q, expected %s", fmt.Sprint(input), expectedFormat).
		Code(errcerr.CodeInvalidFormat).
		Cause(cause).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *errcerr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(errcerr.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ExtractDetails extracts all details from a coded error
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := err.(*errcerr.Error); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
