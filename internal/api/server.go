package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"todoboard/pkg/task"
)

// Server is the HTTP API of the development task-list service.
type Server struct {
	tasks    task.Store
	log      *zap.Logger
	validate *validator.Validate
	limiter  *rate.Limiter // nil = unlimited
	mux      *http.ServeMux
	handler  http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit caps request throughput with a token bucket. A zero limit
// leaves the server unlimited.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(s *Server) {
		if perSecond > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// New creates a new Server.
func New(tasks task.Store, log *zap.Logger, opts ...Option) *Server {
	s := &Server{
		tasks:    tasks,
		log:      log,
		validate: newValidator(),
		mux:      http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	s.handler = s.withRequestID(s.withAccessLog(s.withRateLimit(s.mux)))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	// Todos
	s.mux.HandleFunc("GET /todos", s.handleTaskList)
	s.mux.HandleFunc("POST /todos/add", s.handleTaskCreate)
	s.mux.HandleFunc("GET /todos/{id}", s.handleTaskGet)

	// System
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write json", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, 200, map[string]string{"status": "ok"})
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}
