package audit

import "sync"

// MemorySink buffers events in memory for test assertions.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Write(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *MemorySink) Close() error { return nil }

// Events returns a copy of everything written so far, in emission order.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event{}, s.events...)
}

// LastWithLevel returns the most recent event at the given level, or false.
func (s *MemorySink) LastWithLevel(level Level) (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].Level == level {
			return s.events[i], true
		}
	}
	return Event{}, false
}
