package sink

import (
	"bytes"
	"strings"
	"sync"
)

// BufferSink captures rendered lines in memory. It is intended for
// tests and for capturing output programmatically.
type BufferSink struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	count int
}

// NewBufferSink creates an empty buffer sink
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// Write appends one line to the buffer
func (s *BufferSink) Write(line []byte) error {
	s.mu.Lock()
	s.buf.Write(line)
	s.count++
	s.mu.Unlock()
	return nil
}

// Close is a no-op
func (s *BufferSink) Close() error {
	return nil
}

// String returns everything captured so far
func (s *BufferSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Lines returns the captured lines without terminators
func (s *BufferSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := strings.TrimSuffix(s.buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Count returns the number of writes received
func (s *BufferSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Reset clears the captured output
func (s *BufferSink) Reset() {
	s.mu.Lock()
	s.buf.Reset()
	s.count = 0
	s.mu.Unlock()
}
