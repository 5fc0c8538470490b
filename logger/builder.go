package logger

import (
	"github.com/redlog-dev/redlog/core"
	"github.com/redlog-dev/redlog/formatter"
	"github.com/redlog-dev/redlog/sink"
)

// Builder provides a fluent API for building Logger instances with a
// non-default sink, formatter, or registry.
type Builder struct {
	name      string
	registry  *Registry
	sink      sink.Sink
	formatter formatter.Formatter
	fields    []core.Field
	lenient   bool
}

// NewBuilder creates a builder for a logger with the given root name
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// WithRegistry sets the registry the logger reads level and theme from
// (default: the process-wide registry)
func (b *Builder) WithRegistry(r *Registry) *Builder {
	b.registry = r
	return b
}

// WithSink sets the output sink (default: the shared stderr console sink)
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithFormatter sets the formatter (default: TextFormatter)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithFields adds accumulated fields present on every emission
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithLenientFormat makes the printf-style methods degrade verb
// mismatches to fmt's inline markers instead of returning
// ErrFormatMismatch.
func (b *Builder) WithLenientFormat() *Builder {
	b.lenient = true
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		registry:  b.registry,
		sink:      b.sink,
		formatter: b.formatter,
		fields:    b.fields,
		lenient:   b.lenient,
	}
	if l.registry == nil {
		l.registry = defaultRegistry
	}
	if l.sink == nil {
		l.sink = defaultSink
	}
	if l.formatter == nil {
		l.formatter = defaultFormatter
	}
	// Cache the BufferFormatter assertion for the pool-backed emit path
	l.bufFormatter, _ = l.formatter.(formatter.BufferFormatter)
	if b.name != "" {
		l.path = []string{b.name}
		l.name = b.name
	}
	return l
}
