package sink

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
)

// ConsoleSink writes lines to a terminal stream, stderr by default. A
// mutex serializes writes so concurrent emits come out line by line.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink creates a console sink on the given writer (nil means
// stderr). File writers are wrapped with go-colorable so ANSI escapes
// render on Windows consoles too.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stderr
	}
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}
	return &ConsoleSink{w: w}
}

// Write appends one line to the stream
func (s *ConsoleSink) Write(line []byte) error {
	s.mu.Lock()
	_, err := s.w.Write(line)
	s.mu.Unlock()
	return err
}

// Close is a no-op; the sink does not own the stream
func (s *ConsoleSink) Close() error {
	return nil
}
