package benchmark

import "github.com/redlog-dev/redlog/sink"

// noopSink accepts and discards every line, isolating the render path
// from I/O in benchmarks.
type noopSink struct{}

func newNoopSink() sink.Sink {
	return noopSink{}
}

func (noopSink) Write(line []byte) error {
	_ = len(line)
	return nil
}

func (noopSink) Close() error {
	return nil
}
