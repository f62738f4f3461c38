package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore is a PostgreSQL-backed task store.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore creates a PgStore.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// EnsureTable creates the todos table if it doesn't exist.
func (s *PgStore) EnsureTable(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id         SERIAL PRIMARY KEY,
			todo       TEXT NOT NULL,
			completed  BOOLEAN NOT NULL DEFAULT FALSE,
			user_id    INTEGER NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_todos_user ON todos(user_id)`)
	return err
}

// Create inserts a new task and returns it with its assigned id.
func (s *PgStore) Create(ctx context.Context, d Draft) (*Task, error) {
	t := Task{Todo: d.Todo, Completed: d.Completed, UserID: d.UserID}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO todos (todo, completed, user_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		t.Todo, t.Completed, t.UserID).Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &t, nil
}

// Get retrieves a single task by id.
func (s *PgStore) Get(ctx context.Context, id int) (*Task, error) {
	var t Task
	err := s.pool.QueryRow(ctx, `
		SELECT id, todo, completed, user_id FROM todos WHERE id = $1`, id).
		Scan(&t.ID, &t.Todo, &t.Completed, &t.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return &t, nil
}

// List returns tasks ordered by id.
func (s *PgStore) List(ctx context.Context, skip, limit int) ([]Task, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, todo, completed, user_id
		FROM todos ORDER BY id ASC OFFSET $1 LIMIT $2`, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	return scanTaskRows(rows)
}

// Count returns total task count.
func (s *PgStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM todos`).Scan(&n)
	return n, err
}

func scanTaskRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]Task, error) {
	tasks := []Task{}
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Todo, &t.Completed, &t.UserID); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return tasks, nil
}
