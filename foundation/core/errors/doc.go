// Package errors provides the standard error constructors for errc modules.
//
// Package: errors
// Title: Standard Error Constructors
// Description: A fluent ErrorBuilder plus ready-made constructors for the
//              failure classes of the library: out-of-range component access,
//              invalid default-uncertainty configuration, numeric domain
//              errors, malformed input and missing registry entries. Every
//              error records the module and operation it came from.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-29 v0.1.0: Initial builder and module constants
// - 2026-10-12 v0.2.0: Constructors for index, policy and domain failures
//
// Usage:
//
//	err := errors.IndexOutOfRange(errors.ModuleUncertain, "At", 2)
//	errors.ExtractModule(err)    // "uncertain"
//	errors.ExtractOperation(err) // "At"
package errors
