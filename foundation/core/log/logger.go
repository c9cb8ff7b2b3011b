// File: logger.go
// Title: Structured Logger
// Description: Leveled logger with named components, persistent fields and
//              pluggable formatters. Coded errors are routed to a level that
//              matches their severity.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Dropped async buffer, request context and audit level

package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	errcerr "github.com/msto63/errc/foundation/core/error"
)

// Logger writes structured log entries to an output
type Logger struct {
	mu sync.RWMutex

	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	fields    Fields
}

// Config configures a new Logger
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger writing JSON at the default level to stderr
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatJSON,
		Output: os.Stderr,
	})
}

// NewWithConfig creates a logger from cfg. A nil Output means stderr.
func NewWithConfig(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level:     cfg.Level,
		formatter: GetFormatter(cfg.Format),
		output:    out,
		name:      cfg.Name,
		fields:    make(Fields),
	}
}

// WithLevel returns a clone with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a clone using the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = GetFormatter(format)
	return c
}

// WithFormatter returns a clone using a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	c := l.clone()
	c.formatter = formatter
	return c
}

// WithOutput returns a clone writing to w
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	c.output = w
	return c
}

// WithName returns a clone with the given component name. Names nest with a dot.
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	if c.name != "" {
		c.name = c.name + "." + name
	} else {
		c.name = name
	}
	return c
}

// WithField returns a clone carrying an extra field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a clone carrying extra fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// Trace logs at trace level
func (l *Logger) Trace(msg string, fields ...Fields) {
	l.log(LevelTrace, msg, nil, fields...)
}

// Debug logs at debug level
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(LevelDebug, msg, nil, fields...)
}

// Info logs at info level
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(LevelInfo, msg, nil, fields...)
}

// Warn logs at warn level
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(LevelWarn, msg, nil, fields...)
}

// Error logs at error level
func (l *Logger) Error(msg string, fields ...Fields) {
	l.log(LevelError, msg, nil, fields...)
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.IsLevelEnabled(LevelDebug) {
		l.log(LevelDebug, fmt.Sprintf(format, args...), nil)
	}
}

// ErrorWithErr logs msg at error level with err attached
func (l *Logger) ErrorWithErr(msg string, err error, fields ...Fields) {
	l.log(LevelError, msg, err, fields...)
}

// WarnWithErr logs msg at warn level with err attached
func (l *Logger) WarnWithErr(msg string, err error, fields ...Fields) {
	l.log(LevelWarn, msg, err, fields...)
}

// LogError logs err at a level derived from its severity. Coded errors
// contribute error_code, error_severity and their details as fields.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	e, ok := err.(*errcerr.Error)
	if !ok {
		l.log(LevelError, err.Error(), err, fields...)
		return
	}

	level := LevelError
	switch e.Severity() {
	case errcerr.SeverityLow:
		level = LevelInfo
	case errcerr.SeverityMedium:
		level = LevelWarn
	}

	extra := Fields{
		"error_code":     e.Code().String(),
		"error_severity": e.Severity().String(),
	}
	if op := e.Operation(); op != "" {
		extra["error_operation"] = op
	}
	for k, v := range e.Details() {
		extra["error_"+k] = v
	}

	l.log(level, e.Message(), err, append(fields, extra)...)
}

// IsLevelEnabled reports whether messages at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level.ShouldLog(l.level)
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel changes the minimum level in place
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Name returns the logger's component name
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) log(level Level, msg string, err error, fields ...Fields) {
	l.mu.RLock()
	if !level.ShouldLog(l.level) {
		l.mu.RUnlock()
		return
	}

	entry := NewEntry(level, msg)
	entry.Logger = l.name
	entry.Error = err
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	formatter := l.formatter
	output := l.output
	l.mu.RUnlock()

	for _, f := range fields {
		for k, v := range f {
			entry.Fields[k] = v
		}
	}

	data, ferr := formatter.Format(entry)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "log: format error: %v\n", ferr)
		return
	}

	l.mu.Lock()
	_, _ = output.Write(data)
	l.mu.Unlock()
}

func (l *Logger) clone() *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	fields := make(Fields, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &Logger{
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		name:      l.name,
		fields:    fields,
	}
}

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New()
}

// GetDefault returns the package-wide default logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-wide default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// Debug logs at debug level on the default logger
func Debug(msg string, fields ...Fields) {
	GetDefault().Debug(msg, fields...)
}

// Info logs at info level on the default logger
func Info(msg string, fields ...Fields) {
	GetDefault().Info(msg, fields...)
}

// Warn logs at warn level on the default logger
func Warn(msg string, fields ...Fields) {
	GetDefault().Warn(msg, fields...)
}

// Error logs at error level on the default logger
func Error(msg string, fields ...Fields) {
	GetDefault().Error(msg, fields...)
}
