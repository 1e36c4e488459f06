package records

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore keeps records in process memory. It backs unit tests and the
// no-database development mode, and intentionally favors clarity over
// performance.
type MemoryStore struct {
	mu         sync.RWMutex
	cases      map[int64]Case
	notes      map[int64]Note
	nextNoteID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cases:      make(map[int64]Case),
		notes:      make(map[int64]Note),
		nextNoteID: 1,
	}
}

// ListCases returns cases ordered by created_at descending. ISO timestamps
// sort correctly as strings.
func (s *MemoryStore) ListCases(_ context.Context) ([]Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Case, 0, len(s.cases))
	for _, c := range s.cases {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

// CreateCase rejects duplicate ids, mirroring the primary key constraint of
// the SQL implementation.
func (s *MemoryStore) CreateCase(_ context.Context, c Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.cases[c.ID]; exists {
		return fmt.Errorf("duplicate case id %d", c.ID)
	}
	s.cases[c.ID] = c
	return nil
}

// UpdateCase on an unknown id is a silent no-op, like a SQL UPDATE matching
// zero rows.
func (s *MemoryStore) UpdateCase(_ context.Context, id int64, u CaseUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cases[id]
	if !ok {
		return nil
	}
	c.Title = u.Title
	c.Category = u.Category
	c.Priority = u.Priority
	c.Description = u.Description
	c.Resolution = u.Resolution
	c.ResolvedAt = u.ResolvedAt
	s.cases[id] = c
	return nil
}

func (s *MemoryStore) DeleteCase(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cases, id)
	return nil
}

// ListNotes returns notes ordered by id ascending.
func (s *MemoryStore) ListNotes(_ context.Context) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CreateNote assigns the next auto-increment id and returns it.
func (s *MemoryStore) CreateNote(_ context.Context, category, content string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextNoteID
	s.nextNoteID++
	s.notes[id] = Note{ID: id, Category: category, Content: content}
	return id, nil
}

func (s *MemoryStore) UpdateNote(_ context.Context, id int64, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok {
		return nil
	}
	n.Content = content
	s.notes[id] = n
	return nil
}

func (s *MemoryStore) DeleteNote(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notes, id)
	return nil
}
