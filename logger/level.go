package logger

import (
	"strings"

	"github.com/redlog-dev/redlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a string to a Level. Both full names and the
// 3-character short codes are accepted; unknown strings map to
// InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug", "dbg":
		return DebugLevel
	case "info", "inf":
		return InfoLevel
	case "warn", "warning", "wrn":
		return WarnLevel
	case "error", "err":
		return ErrorLevel
	case "critical", "crt":
		return CriticalLevel
	default:
		return InfoLevel
	}
}
