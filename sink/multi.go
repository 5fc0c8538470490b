package sink

import "go.uber.org/multierr"

// MultiSink fans each line out to several sinks. A failing child does
// not stop delivery to the others; errors are aggregated.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a sink writing to all given sinks
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Write appends the line to every child sink
func (m *MultiSink) Write(line []byte) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Write(line))
	}
	return err
}

// Close closes all child sinks
func (m *MultiSink) Close() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
