package task

import (
	"context"
	"errors"
)

// Task is a todo item as exchanged with the task-list service.
type Task struct {
	ID        int    `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// Draft is the body of a create request.
type Draft struct {
	Todo      string `json:"todo" validate:"required,notblank"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId" validate:"required,gt=0"`
}

// Page is the list envelope returned by GET /todos.
type Page struct {
	Todos []Task `json:"todos"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

// ErrNotFound is returned by Get when no task has the requested id.
var ErrNotFound = errors.New("task not found")

// Store is the contract for task persistence behind the development service.
type Store interface {
	Create(ctx context.Context, d Draft) (*Task, error)
	Get(ctx context.Context, id int) (*Task, error)
	// List returns up to limit tasks after skipping skip of them, ordered by id.
	List(ctx context.Context, skip, limit int) ([]Task, error)
	Count(ctx context.Context) (int, error)
	EnsureTable(ctx context.Context) error
}
