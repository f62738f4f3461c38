package board

import (
	"strings"
	"time"
)

// DateLayout is the format accepted for date bounds.
const DateLayout = "2006-01-02"

// Filter is the visibility predicate: a case-insensitive substring search
// and an optional inclusive creation-time range.
type Filter struct {
	Search string
	From   *time.Time
	To     *time.Time
}

// Match reports whether t passes every condition of f.
func (f Filter) Match(t Task) bool {
	if !strings.Contains(strings.ToLower(t.Text), strings.ToLower(f.Search)) {
		return false
	}
	if f.From != nil && t.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && t.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

// Apply returns the tasks matching f, preserving order. The result is never nil.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// ParseDate reads a YYYY-MM-DD bound as midnight UTC of that day, the way a
// browser date input reports its value. Blank or malformed input yields nil,
// meaning the bound is unset.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &d
}
