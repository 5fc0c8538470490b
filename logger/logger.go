package logger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redlog-dev/redlog/core"
	"github.com/redlog-dev/redlog/formatter"
	"github.com/redlog-dev/redlog/sink"
)

// ErrFormatMismatch is returned by the printf-style methods when the
// arguments do not satisfy the format verbs. The line is still written,
// with fmt's inline diagnostics marking the mismatch, so the event is
// never lost either way.
var ErrFormatMismatch = errors.New("format mismatch")

// nameSeparator joins name path segments for display.
const nameSeparator = "."

// Logger is an immutable named logging context. Derivation methods
// (WithName, WithField, With) return new Logger values; the receiver is
// never modified and stays valid and concurrency-safe after derivation.
type Logger struct {
	registry     *Registry
	sink         sink.Sink
	formatter    formatter.Formatter
	bufFormatter formatter.BufferFormatter
	path         []string
	name         string // path joined with nameSeparator, cached
	fields       []core.Field
	lenient      bool
	err          error // deferred derivation error, surfaced at emit
}

var (
	defaultSink      = sink.NewConsoleSink(nil)
	defaultFormatter = formatter.NewTextFormatter(formatter.Config{})
)

// GetLogger creates a root logger with the given name, writing to the
// shared stderr console sink through the process-wide registry.
// Repeated calls with the same name return independent, equal-valued
// loggers.
func GetLogger(name string) *Logger {
	l := &Logger{
		registry:  defaultRegistry,
		sink:      defaultSink,
		formatter: defaultFormatter,
	}
	l.bufFormatter, _ = l.formatter.(formatter.BufferFormatter)
	if name != "" {
		l.path = []string{name}
		l.name = name
	}
	return l
}

// Name returns the logger's display name: the name path joined with dots.
func (l *Logger) Name() string {
	return l.name
}

// NamePath returns a copy of the logger's name path.
func (l *Logger) NamePath() []string {
	out := make([]string, len(l.path))
	copy(out, l.path)
	return out
}

// Fields returns a copy of the logger's accumulated fields.
func (l *Logger) Fields() []core.Field {
	out := make([]core.Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// WithName returns a logger whose name path is the receiver's with
// child appended. Fields carry over unchanged.
func (l *Logger) WithName(child string) *Logger {
	path := make([]string, len(l.path)+1)
	copy(path, l.path)
	path[len(l.path)] = child

	c := *l
	c.path = path
	if c.name == "" {
		c.name = child
	} else {
		c.name = c.name + nameSeparator + child
	}
	return &c
}

// With returns a logger with additional accumulated fields appended
// after the receiver's. The name path is unchanged.
func (l *Logger) With(fields ...core.Field) *Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make([]core.Field, len(l.fields)+len(fields))
	copy(merged, l.fields)
	copy(merged[len(l.fields):], fields)

	c := *l
	c.fields = merged
	return &c
}

// WithField returns a logger with one additional field built from key
// and value. The value must be one of the supported primitive kinds;
// anything else records ErrInvalidValue on the derived logger, which
// every subsequent emit returns, so the mistake is never silent.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	f, err := core.New(key, value)
	if err != nil {
		c := *l
		c.err = err
		return &c
	}
	return l.With(f)
}

// log renders and writes one entry. Callers have already passed the
// level gate.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) error {
	entry := core.GetEntry()
	entry.Time = time.Now()
	entry.Level = level
	entry.Name = l.name
	entry.Message = msg

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	th := l.registry.Theme()

	var err error
	if l.bufFormatter != nil {
		buf := formatter.GetBuffer()
		l.bufFormatter.FormatEntry(entry, th, buf)
		err = l.sink.Write(buf.Bytes())
		formatter.PutBuffer(buf)
	} else {
		var line []byte
		line, err = l.formatter.Format(entry, th)
		if err == nil {
			err = l.sink.Write(line)
		}
	}

	core.PutEntry(entry)
	return err
}

// logf applies printf formatting after the level gate and reports
// verb/argument mismatches.
func (l *Logger) logf(level core.Level, format string, args []interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if err := l.log(level, msg, nil); err != nil {
		return err
	}
	if !l.lenient && strings.Contains(msg, "%!") {
		return fmt.Errorf("%w: %q with %d args", ErrFormatMismatch, format, len(args))
	}
	return nil
}

// Critical logs a message at CriticalLevel
func (l *Logger) Critical(msg string, fields ...core.Field) error {
	if l.err != nil {
		return l.err
	}
	if !core.CriticalLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.log(core.CriticalLevel, msg, fields)
}

// Error logs a message at ErrorLevel
func (l *Logger) Error(msg string, fields ...core.Field) error {
	if l.err != nil {
		return l.err
	}
	if !core.ErrorLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.log(core.ErrorLevel, msg, fields)
}

// Warn logs a message at WarnLevel
func (l *Logger) Warn(msg string, fields ...core.Field) error {
	if l.err != nil {
		return l.err
	}
	if !core.WarnLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.log(core.WarnLevel, msg, fields)
}

// Info logs a message at InfoLevel
func (l *Logger) Info(msg string, fields ...core.Field) error {
	if l.err != nil {
		return l.err
	}
	if !core.InfoLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.log(core.InfoLevel, msg, fields)
}

// Debug logs a message at DebugLevel
func (l *Logger) Debug(msg string, fields ...core.Field) error {
	if l.err != nil {
		return l.err
	}
	if !core.DebugLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.log(core.DebugLevel, msg, fields)
}

// Short aliases, thin delegation over the canonical methods. Warn is
// already its own short form.

// Crt logs a critical message (short form)
func (l *Logger) Crt(msg string, fields ...core.Field) error {
	return l.Critical(msg, fields...)
}

// Err logs an error message (short form)
func (l *Logger) Err(msg string, fields ...core.Field) error {
	return l.Error(msg, fields...)
}

// Inf logs an info message (short form)
func (l *Logger) Inf(msg string, fields ...core.Field) error {
	return l.Info(msg, fields...)
}

// Dbg logs a debug message (short form)
func (l *Logger) Dbg(msg string, fields ...core.Field) error {
	return l.Debug(msg, fields...)
}

// Criticalf logs a critical message with printf-style formatting
func (l *Logger) Criticalf(format string, args ...interface{}) error {
	if l.err != nil {
		return l.err
	}
	if !core.CriticalLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.logf(core.CriticalLevel, format, args)
}

// Errorf logs an error message with printf-style formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	if l.err != nil {
		return l.err
	}
	if !core.ErrorLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.logf(core.ErrorLevel, format, args)
}

// Warnf logs a warning message with printf-style formatting
func (l *Logger) Warnf(format string, args ...interface{}) error {
	if l.err != nil {
		return l.err
	}
	if !core.WarnLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.logf(core.WarnLevel, format, args)
}

// Infof logs an info message with printf-style formatting
func (l *Logger) Infof(format string, args ...interface{}) error {
	if l.err != nil {
		return l.err
	}
	if !core.InfoLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.logf(core.InfoLevel, format, args)
}

// Debugf logs a debug message with printf-style formatting
func (l *Logger) Debugf(format string, args ...interface{}) error {
	if l.err != nil {
		return l.err
	}
	if !core.DebugLevel.Enabled(l.registry.Level()) {
		return nil
	}
	return l.logf(core.DebugLevel, format, args)
}

// Close closes the logger's sink
func (l *Logger) Close() error {
	return l.sink.Close()
}
