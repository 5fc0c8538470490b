package formatter

import (
	"bytes"
	"sync"

	"github.com/redlog-dev/redlog/core"
	"github.com/redlog-dev/redlog/theme"
)

// Formatter defines the interface for log formatters. The theme is
// passed per call because the active theme is registry state that may
// change between emissions.
type Formatter interface {
	// Format renders a log entry into a complete line, including the
	// trailing terminator.
	Format(entry *core.Entry, th theme.Theme) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to render directly into a caller-provided buffer, avoiding the
// intermediate byte slice allocation on the emit path.
type BufferFormatter interface {
	// FormatEntry renders a log entry into the given buffer.
	FormatEntry(entry *core.Entry, th theme.Theme, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (default "15:04:05")
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns a reset buffer from the shared pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the pool. Very large buffers are
// discarded so a single oversized line cannot inflate memory for good.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	bufferPool.Put(buf)
}
