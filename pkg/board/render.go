package board

// EmptyPlaceholder is the single row shown when the current page has no tasks.
const EmptyPlaceholder = "No todos found."

// Badge is the styling class of a task's status badge.
type Badge int

const (
	BadgeWarning Badge = iota // pending
	BadgeSuccess              // done
)

// Item is one rendered task row.
type Item struct {
	ID         int
	Text       string
	Status     string // "Done" or "Pending"
	BadgeStyle Badge
}

// PageControl is one numbered pagination button.
type PageControl struct {
	Number int
	Active bool
}

// View is everything the UI draws for one frame. A new View replaces the
// previous one entirely.
type View struct {
	Items       []Item
	Placeholder string // set only when Items is empty
	Pages       []PageControl
	Busy        bool
	Error       string // empty when the banner is hidden
	Draft       string
}

// Render projects st into a View: the page slice of the visible tasks and
// one page control per page.
func Render(st *State) View {
	v := View{
		Busy:  st.Busy,
		Error: st.Error,
		Draft: st.Draft,
	}

	for _, t := range pageSlice(st.Store.Visible(), st.Store.Page()) {
		item := Item{ID: t.ID, Text: t.Text, Status: "Pending", BadgeStyle: BadgeWarning}
		if t.Completed {
			item.Status = "Done"
			item.BadgeStyle = BadgeSuccess
		}
		v.Items = append(v.Items, item)
	}
	if len(v.Items) == 0 {
		v.Placeholder = EmptyPlaceholder
	}

	total := st.Store.TotalPages()
	for n := 1; n <= total; n++ {
		v.Pages = append(v.Pages, PageControl{Number: n, Active: n == st.Store.Page()})
	}
	return v
}

func pageSlice(tasks []Task, page int) []Task {
	start := (page - 1) * PageSize
	if start < 0 || start >= len(tasks) {
		return nil
	}
	end := min(start+PageSize, len(tasks))
	return tasks[start:end]
}
