// Package sink provides the Sink interface and its built-in
// implementations for delivering rendered log lines to their
// destinations.
//
// Every operation is synchronous: Write blocks until the underlying
// stream accepts the line and returns any I/O error to the caller.
// There is no buffering, no retry, and no background goroutine. Each
// sink guards its stream with a mutex so a line is always written as
// one atomic append, which is what keeps concurrent emissions from
// interleaving mid-line.
//
// Built-in sinks:
//
//   - ConsoleSink writes to a terminal stream (default: stderr),
//     wrapping files with go-colorable for Windows consoles.
//   - FileSink appends to a file, falling back to stderr when the file
//     cannot be opened.
//   - BufferSink captures output in memory for tests.
//   - MultiSink fans a line out to several sinks, aggregating errors
//     with multierr.
package sink
