package sink

// Sink is an append-only destination for rendered log lines. Write
// receives one complete line including its terminator and must be atomic
// with respect to concurrent writers: two lines never interleave.
type Sink interface {
	// Write appends a single rendered line
	Write(line []byte) error

	// Close releases any resources held by the sink
	Close() error
}
