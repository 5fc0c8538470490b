package logger

import (
	"sync"

	"github.com/redlog-dev/redlog/core"
)

var (
	defaultLogger = GetLogger("")
	defaultMu     sync.RWMutex
)

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Critical logs a critical message using the default logger
func Critical(msg string, fields ...core.Field) error {
	return Default().Critical(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) error {
	return Default().Error(msg, fields...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) error {
	return Default().Warn(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) error {
	return Default().Info(msg, fields...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) error {
	return Default().Debug(msg, fields...)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...interface{}) error {
	return Default().Criticalf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) error {
	return Default().Errorf(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) error {
	return Default().Warnf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) error {
	return Default().Infof(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) error {
	return Default().Debugf(format, args...)
}

// With creates a logger derived from the default one with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
