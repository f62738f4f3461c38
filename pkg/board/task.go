// Package board is the client side of the todo list: an in-memory task store,
// the search/date filter, pagination, the view projection and the controller
// that turns user actions and network results into state changes.
//
// All state is owned by a Controller and mutated only by Controller.Update,
// which the UI calls from its event loop. Network calls run on their own
// goroutines and report back as messages on the controller's inbox.
package board

import (
	"time"

	"todoboard/pkg/task"
)

// OwnerID is the user id stamped on every task this client creates.
const OwnerID = 1

// PageSize is the number of tasks shown per page.
const PageSize = 10

// Task is one todo item as held by the client.
type Task struct {
	ID        int
	Text      string
	Completed bool
	CreatedAt time.Time
	UserID    int
}

func fromWire(t task.Task, createdAt time.Time) Task {
	return Task{
		ID:        t.ID,
		Text:      t.Todo,
		Completed: t.Completed,
		CreatedAt: createdAt,
		UserID:    t.UserID,
	}
}

// syntheticEpoch is the lower bound for invented creation times. The list
// endpoint carries no timestamps, so fetched tasks get a uniformly random
// one between this instant and now.
var syntheticEpoch = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local)

// randomCreatedAt returns a time uniformly distributed in [syntheticEpoch, now).
// frac must be in [0, 1).
func randomCreatedAt(now time.Time, frac float64) time.Time {
	span := now.Sub(syntheticEpoch)
	if span <= 0 {
		return syntheticEpoch
	}
	return syntheticEpoch.Add(time.Duration(frac * float64(span)))
}
