package task

import (
	"context"
	"sync"
)

// MemStore keeps tasks in process memory. Used when no database is configured.
type MemStore struct {
	mu     sync.RWMutex
	tasks  []Task
	nextID int
}

// NewMemStore creates a MemStore seeded with the given tasks. Seed ids are
// kept; new ids continue after the largest one.
func NewMemStore(seed ...Task) *MemStore {
	s := &MemStore{nextID: 1}
	for _, t := range seed {
		s.tasks = append(s.tasks, t)
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

func (s *MemStore) EnsureTable(_ context.Context) error { return nil }

func (s *MemStore) Create(_ context.Context, d Draft) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := Task{ID: s.nextID, Todo: d.Todo, Completed: d.Completed, UserID: d.UserID}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return &t, nil
}

func (s *MemStore) Get(_ context.Context, id int) (*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) List(_ context.Context, skip, limit int) ([]Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if skip < 0 {
		skip = 0
	}
	if skip > len(s.tasks) {
		skip = len(s.tasks)
	}
	end := len(s.tasks)
	if limit >= 0 && skip+limit < end {
		end = skip + limit
	}
	out := make([]Task, end-skip)
	copy(out, s.tasks[skip:end])
	return out, nil
}

func (s *MemStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks), nil
}
