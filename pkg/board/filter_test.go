package board

import (
	"strings"
	"testing"
	"time"
)

func day(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Text: "Buy milk", CreatedAt: day("2024-01-10").Add(9 * time.Hour)},
		{ID: 2, Text: "Walk the DOG", CreatedAt: day("2024-02-01")},
		{ID: 3, Text: "Call mom", CreatedAt: day("2024-03-15").Add(18 * time.Hour)},
		{ID: 4, Text: "buy stamps", CreatedAt: day("2023-06-30")},
		{ID: 5, Text: "Read a book", CreatedAt: day("2025-01-01")},
	}
}

func ids(tasks []Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	cases := []struct {
		query string
		want  []int
	}{
		{"", []int{1, 2, 3, 4, 5}},
		{"buy", []int{1, 4}},
		{"BUY", []int{1, 4}},
		{"dog", []int{2}},
		{"o", []int{2, 3, 5}},
		{"nothing matches", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got := Filter{Search: tc.query}.Apply(sampleTasks())
			if !equalInts(ids(got), tc.want) {
				t.Fatalf("ids = %v, want %v", ids(got), tc.want)
			}
			for _, task := range got {
				if !strings.Contains(strings.ToLower(task.Text), strings.ToLower(tc.query)) {
					t.Errorf("task %q does not contain %q", task.Text, tc.query)
				}
			}
		})
	}
}

func TestFilterDateRange(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		want     []int
	}{
		{"no bounds", "", "", []int{1, 2, 3, 4, 5}},
		{"from only", "2024-02-01", "", []int{2, 3, 5}},
		{"to only", "", "2024-02-01", []int{1, 2, 4}},
		{"both", "2024-01-01", "2024-12-31", []int{1, 2, 3}},
		// the to bound is midnight, so later times that day fall outside
		{"to is midnight", "", "2024-03-15", []int{1, 2, 4}},
		{"empty range", "2024-06-01", "2024-05-01", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Filter{From: ParseDate(tc.from), To: ParseDate(tc.to)}
			got := f.Apply(sampleTasks())
			if !equalInts(ids(got), tc.want) {
				t.Fatalf("ids = %v, want %v", ids(got), tc.want)
			}
			for _, task := range got {
				if f.From != nil && task.CreatedAt.Before(*f.From) {
					t.Errorf("task %d before from bound", task.ID)
				}
				if f.To != nil && task.CreatedAt.After(*f.To) {
					t.Errorf("task %d after to bound", task.ID)
				}
			}
		})
	}
}

func TestFilterCombinesSearchAndDates(t *testing.T) {
	f := Filter{Search: "buy", From: ParseDate("2024-01-01")}
	got := f.Apply(sampleTasks())
	if !equalInts(ids(got), []int{1}) {
		t.Errorf("ids = %v, want [1]", ids(got))
	}
}

func TestParseDate(t *testing.T) {
	if ParseDate("") != nil || ParseDate("   ") != nil {
		t.Error("blank input should clear the bound")
	}
	if ParseDate("2024-13-40") != nil || ParseDate("yesterday") != nil {
		t.Error("malformed input should clear the bound")
	}
	d := ParseDate(" 2024-05-06 ")
	if d == nil {
		t.Fatal("expected a date")
	}
	if !d.Equal(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v, want 2024-05-06 00:00 UTC", d)
	}
}
