package board

import "todoboard/pkg/task"

// Msg is an input to Controller.Update: either a user command or the result
// of a network call.
type Msg interface {
	isMsg()
}

// Refresh fetches the whole task list from the remote service.
type Refresh struct{}

// EditDraft records the current text of the new-task input.
type EditDraft struct {
	Text string
}

// AddTask submits the current draft as a new task.
type AddTask struct{}

// SetSearch replaces the search text and re-filters.
type SetSearch struct {
	Query string
}

// Bound selects which end of the date range a SetDateBound changes.
type Bound int

const (
	BoundFrom Bound = iota
	BoundTo
)

// SetDateBound replaces one date bound with a YYYY-MM-DD value (blank clears
// it) and re-filters.
type SetDateBound struct {
	Bound Bound
	Value string
}

// SetPage moves to page N without re-filtering.
type SetPage struct {
	N int
}

type tasksFetched struct {
	tasks []task.Task
}

type fetchFailed struct {
	err error
}

type taskCreated struct {
	task task.Task
}

type createFailed struct {
	err error
}

type errorExpired struct {
	seq int
}

func (Refresh) isMsg()      {}
func (EditDraft) isMsg()    {}
func (AddTask) isMsg()      {}
func (SetSearch) isMsg()    {}
func (SetDateBound) isMsg() {}
func (SetPage) isMsg()      {}
func (tasksFetched) isMsg() {}
func (fetchFailed) isMsg()  {}
func (taskCreated) isMsg()  {}
func (createFailed) isMsg() {}
func (errorExpired) isMsg() {}
