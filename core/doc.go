// Package core defines the shared types used across the redlog library.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for zero-allocation
// structured key-value pairs.
//
// Field is a closed tagged union over five primitive kinds: string,
// integer, float, bool, and null. The typed constructors (String, Int,
// Bool, ...) cannot fail; the validating constructor New rejects any
// other kind with ErrInvalidValue rather than coercing it. Values are
// encoded into fixed-size slots (Int64, Float64) so that common kinds
// never escape to the heap.
//
// Field sequences are append-only: accumulation order is preserved and
// duplicate keys are allowed in storage. Resolve applies last-write-wins
// shadowing at render time, which every formatter must go through.
//
// Entry objects are pooled via sync.Pool to keep the emit path
// allocation-free. Callers get an Entry with GetEntry and must return it
// with PutEntry once the sink write has completed. The pool pre-allocates
// the Fields slice with capacity 8, which covers most log calls without
// triggering a slice growth.
package core
