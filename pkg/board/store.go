package board

import "slices"

// Store holds every known task, the filtered view of them and the page cursor.
type Store struct {
	all     []Task
	visible []Task
	page    int
}

// NewStore returns an empty store positioned on page 1.
func NewStore() *Store {
	return &Store{page: 1}
}

// All returns every task, newest created first, then in fetch order.
func (s *Store) All() []Task { return s.all }

// Visible returns the tasks passing the active filter.
func (s *Store) Visible() []Task { return s.visible }

// Page returns the 1-based page cursor.
func (s *Store) Page() int { return s.page }

// TotalPages is ceil(len(Visible)/PageSize); zero when nothing is visible.
func (s *Store) TotalPages() int {
	return (len(s.visible) + PageSize - 1) / PageSize
}

// ReplaceAll sets both the full and the visible list to tasks and returns to page 1.
func (s *Store) ReplaceAll(tasks []Task) {
	s.all = tasks
	s.visible = slices.Clone(tasks)
	s.page = 1
}

// Prepend puts t at the front of the full list. The visible list is left alone;
// callers re-run the filter afterwards.
func (s *Store) Prepend(t Task) {
	s.all = append([]Task{t}, s.all...)
}

// SetPage moves the cursor without bounds checks. Out-of-range pages render empty.
func (s *Store) SetPage(n int) {
	s.page = n
}

func (s *Store) setVisible(tasks []Task) {
	s.visible = tasks
}
