package core

import (
	"sync"
	"time"
)

// Entry represents a single log event with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Name    string
	Message string
	Fields  []Field
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Fields = e.Fields[:0]
	return e
}

// PutEntry returns an Entry to the pool. The caller must not retain the
// entry or its Fields slice afterwards.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Fields = e.Fields[:0]
	e.Name = ""
	e.Message = ""
	entryPool.Put(e)
}
