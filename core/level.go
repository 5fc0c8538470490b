package core

// Level represents the severity of a log entry. Levels are totally
// ordered; higher values are more severe.
type Level int8

const (
	// DebugLevel for debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warnings and potential issues
	WarnLevel
	// ErrorLevel for recoverable errors
	ErrorLevel
	// CriticalLevel for system-breaking errors
	CriticalLevel
)

// String returns the full lowercase name of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	default:
		return "unknown"
	}
}

// ShortString returns the 3-character badge code of the level.
func (l Level) ShortString() string {
	switch l {
	case DebugLevel:
		return "dbg"
	case InfoLevel:
		return "inf"
	case WarnLevel:
		return "wrn"
	case ErrorLevel:
		return "err"
	case CriticalLevel:
		return "crt"
	default:
		return "unk"
	}
}

// Enabled reports whether an entry at level l passes the given minimum.
func (l Level) Enabled(min Level) bool {
	return l >= min
}
