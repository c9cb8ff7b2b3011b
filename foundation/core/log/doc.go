// Package log provides structured logging for errc.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with JSON, text, console and logfmt
//              output. Loggers are immutable: WithField, WithName, WithLevel
//              and friends return configured clones, so a logger can be shared
//              between goroutines. Coded errors are logged at a level derived
//              from their severity.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with structured logging
// - 2026-10-12 v0.2.0: Removed async buffering and request context
//
// Usage:
//
//	logger := log.New().WithName("calc").WithFormat(log.FormatText)
//	logger.Info("operation registered", log.Fields{"name": "sin", "arity": 1})
//	logger.LogError(err)
package log
