package sink

import (
	"os"
	"path/filepath"
	"sync"
)

// FileSink appends rendered lines to a file. When the file cannot be
// opened the sink falls back to stderr rather than failing, so logging
// keeps working under a misconfigured path.
type FileSink struct {
	mu    sync.Mutex
	file  *os.File
	owned bool
}

// NewFileSink opens (or creates) the file at path for appending,
// creating parent directories as needed.
func NewFileSink(path string) *FileSink {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &FileSink{file: os.Stderr}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return &FileSink{file: os.Stderr}
	}
	return &FileSink{file: file, owned: true}
}

// Write appends one line to the file
func (s *FileSink) Write(line []byte) error {
	s.mu.Lock()
	_, err := s.file.Write(line)
	s.mu.Unlock()
	return err
}

// Close closes the file if this sink opened it
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.owned {
		return nil
	}
	s.owned = false
	return s.file.Close()
}
