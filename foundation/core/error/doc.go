// Package error provides the coded error type used throughout errc.
//
// Package: error
// Title: errc Error Handling Framework
// Description: Structured errors carrying a code, a severity, free-form details,
//              the failing operation and a captured stack trace. Errors wrap causes
//              and stay compatible with errors.Is / errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Codes narrowed to numeric, configuration and parsing failures
//
// Usage:
//
//	import errcerr "github.com/msto63/errc/foundation/core/error"
//
//	err := errcerr.New("index must be 0 or 1").
//		WithCode(errcerr.CodeValueOutOfRange).
//		WithDetail("index", 2)
//
//	if errcerr.HasCode(err, errcerr.CodeValueOutOfRange) {
//		// handle out-of-range access
//	}
package error
