// Package formatter defines how log entries are serialized into lines.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which renders into a caller-provided bytes.Buffer.
// The logger checks for BufferFormatter at construction time and prefers
// it when available, eliminating the intermediate byte slice allocation
// on the emit path.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// both interfaces. They use the shared buffer pool and Go's Append-style
// functions (time.AppendFormat, strconv.AppendInt) to avoid per-call
// allocations. The TextFormatter additionally pre-computes level badge
// strings ("[inf]", "[err]", ...) so the common path is a single
// WriteString call per column.
//
// The active theme is passed to every call rather than stored in the
// formatter, because the theme is registry state that may be swapped
// between emissions. Duplicate field keys are collapsed through
// core.Resolve before rendering, so the last occurrence per key wins in
// both output formats.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line from permanently inflating memory usage.
package formatter
