// Package logger is the public API of redlog. Most users only need to
// import this package.
//
// A Logger is immutable — the name path, accumulated fields, sink, and
// formatter are fixed at construction and derivation returns new
// values. This makes every Logger safe for concurrent use without
// locking on the read path:
//
//	log := logger.GetLogger("app")
//	db := log.WithName("db").With(logger.String("driver", "postgres"))
//	db.Info("connected", logger.Int("pool", 10))
//
// Filtering is governed by the process-wide Registry, which holds the
// minimum level and active theme behind a read-write mutex. Changing
// either takes effect immediately for every logger, old or new:
//
//	logger.SetLevel(logger.DebugLevel)
//	logger.SetTheme(theme.Plain())
//
// Level checks happen before any formatting work, so filtered-out
// messages cost a registry read and an integer comparison.
//
// Emit methods return an error: sink write failures propagate, and the
// printf-style variants report verb/argument mismatches as
// ErrFormatMismatch (the line is still written, carrying fmt's inline
// diagnostics). Builders can opt into lenient formatting to suppress
// the mismatch error for call sites that must never fail.
//
// For custom sinks, formatters, or an isolated registry, use the
// Builder:
//
//	log := logger.NewBuilder("worker").
//	    WithSink(sink.NewFileSink("/var/log/worker.log")).
//	    WithFormatter(formatter.NewJSONFormatter(formatter.Config{})).
//	    Build()
package logger
