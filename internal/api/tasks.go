package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"todoboard/internal/metrics"
	"todoboard/pkg/task"
)

const defaultListLimit = 30

func (s *Server) handleTaskList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	skip := queryInt(r, "skip", 0)
	if skip < 0 {
		skip = 0
	}
	limit := queryInt(r, "limit", defaultListLimit)
	if limit < 0 {
		limit = defaultListLimit
	}

	total, err := s.tasks.Count(ctx)
	if err != nil {
		s.writeError(w, 500, err.Error())
		return
	}
	// limit=0 means everything
	fetch := limit
	if fetch == 0 {
		fetch = total
	}
	tasks, err := s.tasks.List(ctx, skip, fetch)
	if err != nil {
		s.writeError(w, 500, err.Error())
		return
	}
	s.writeJSON(w, 200, task.Page{Todos: tasks, Total: total, Skip: skip, Limit: len(tasks)})
}

func (s *Server) handleTaskGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.writeError(w, 400, "invalid id")
		return
	}
	t, err := s.tasks.Get(r.Context(), id)
	if errors.Is(err, task.ErrNotFound) {
		s.writeError(w, 404, "Todo with id '"+strconv.Itoa(id)+"' not found")
		return
	}
	if err != nil {
		s.writeError(w, 500, err.Error())
		return
	}
	s.writeJSON(w, 200, t)
}

func (s *Server) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	var d task.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		s.writeError(w, 400, "invalid JSON: "+err.Error())
		return
	}
	if err := s.validate.Struct(d); err != nil {
		s.writeError(w, 400, err.Error())
		return
	}
	result, err := s.tasks.Create(r.Context(), d)
	if err != nil {
		s.writeError(w, 500, err.Error())
		return
	}
	metrics.TasksCreated.Inc()
	requestLogger(r.Context(), s.log).Info("task created",
		zap.Int("id", result.ID),
		zap.Int("user_id", result.UserID),
	)
	s.writeJSON(w, 201, result)
}
