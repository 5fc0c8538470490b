package theme

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorSupported reports whether w is a terminal capable of rendering
// ANSI color. The NO_COLOR and REDLOG_NO_COLOR environment variables
// disable color regardless of the terminal; REDLOG_FORCE_COLOR enables
// it regardless. Non-file writers never support color.
func ColorSupported(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("REDLOG_NO_COLOR") != "" {
		return false
	}
	if os.Getenv("REDLOG_FORCE_COLOR") != "" {
		return true
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
