package theme

import (
	"os"

	"github.com/redlog-dev/redlog/core"
)

// Theme controls the colors and layout of rendered log lines. A Theme is
// a plain value; once selected it is never mutated, so it may be shared
// across goroutines freely.
type Theme struct {
	// Badge colors per level.
	Critical Color
	Error    Color
	Warn     Color
	Info     Color
	Debug    Color

	// Colors for the remaining line components.
	Name       Color
	Message    Color
	FieldKey   Color
	FieldValue Color

	// NameWidth is the fixed column width reserved for the [name]
	// segment so messages line up across loggers.
	NameWidth int
	// MessageWidth pads the message out to a fixed column before fields
	// start. Zero disables message alignment.
	MessageWidth int
}

// LevelColor returns the badge color for the given level.
func (t Theme) LevelColor(l core.Level) Color {
	switch l {
	case core.CriticalLevel:
		return t.Critical
	case core.ErrorLevel:
		return t.Error
	case core.WarnLevel:
		return t.Warn
	case core.InfoLevel:
		return t.Info
	case core.DebugLevel:
		return t.Debug
	default:
		return NoColor
	}
}

// Colorized returns the default colorful theme.
func Colorized() Theme {
	return Theme{
		Critical:     BrightMagenta,
		Error:        Red,
		Warn:         Yellow,
		Info:         Green,
		Debug:        BrightBlack,
		Name:         Cyan,
		Message:      White,
		FieldKey:     BrightCyan,
		FieldValue:   White,
		NameWidth:    12,
		MessageWidth: 44,
	}
}

// Plain returns a theme with the same layout as Colorized but no colors.
// Rendering with it never emits escape sequences.
func Plain() Theme {
	return Theme{
		NameWidth:    12,
		MessageWidth: 44,
	}
}

// Default returns Colorized when the stderr terminal supports ANSI
// color, Plain otherwise.
func Default() Theme {
	if ColorSupported(os.Stderr) {
		return Colorized()
	}
	return Plain()
}
