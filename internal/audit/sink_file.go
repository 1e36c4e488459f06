package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileSink appends events as JSON lines to a single file. Events below the
// configured minimum level are dropped.
type FileSink struct {
	minLevel Level

	mu sync.Mutex
	f  *os.File
}

// NewFileSink creates or opens path for appending; the parent directory is
// created when missing.
func NewFileSink(path string, minLevel Level) (*FileSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileSink{minLevel: minLevel, f: f}, nil
}

// Write appends one JSON line per event.
func (s *FileSink) Write(e Event) error {
	if e.Level.rank() < s.minLevel.rank() {
		return nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return os.ErrClosed
	}
	_, err = s.f.Write(data)
	return err
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
