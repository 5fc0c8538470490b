package theme

import "strconv"

// Color is an ANSI SGR foreground code. The zero value NoColor renders
// no escape sequences at all.
type Color uint8

const (
	NoColor Color = 0

	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37

	BrightBlack   Color = 90
	BrightRed     Color = 91
	BrightGreen   Color = 92
	BrightYellow  Color = 93
	BrightBlue    Color = 94
	BrightMagenta Color = 95
	BrightCyan    Color = 96
	BrightWhite   Color = 97
)

// Reset is the SGR sequence that ends any colored span.
const Reset = "\x1b[0m"

// escapes caches the start sequence per SGR code so the render path
// never formats integers.
var escapes [108]string

func init() {
	for c := 1; c < len(escapes); c++ {
		escapes[c] = "\x1b[" + strconv.Itoa(c) + "m"
	}
}

// Escape returns the SGR start sequence for the color, or "" for NoColor.
func (c Color) Escape() string {
	if int(c) >= len(escapes) {
		return ""
	}
	return escapes[c]
}

// Paint wraps s in the color's escape sequence. NoColor returns s
// unchanged.
func (c Color) Paint(s string) string {
	if c == NoColor {
		return s
	}
	return c.Escape() + s + Reset
}
