// Package gateway talks to the remote task-list service over HTTP/JSON.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todoboard/pkg/task"
)

// RequestIDHeader is set on every outgoing request.
const RequestIDHeader = "X-Request-ID"

// ErrNoTodos is returned by List when the body decodes but carries no todos array.
var ErrNoTodos = errors.New("list todos: response has no todos field")

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Code, e.Body)
}

// Client is the HTTP transport for the task-list service.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a Client for baseURL. A zero timeout means requests never time out.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// List fetches up to limit tasks with GET /todos.
func (c *Client) List(ctx context.Context, limit int) ([]task.Task, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	var page task.Page
	if err := c.do(ctx, http.MethodGet, "/todos", q, nil, &page); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	if page.Todos == nil {
		return nil, ErrNoTodos
	}
	return page.Todos, nil
}

// Create submits d with POST /todos/add and returns the created task.
func (c *Client) Create(ctx context.Context, d task.Draft) (task.Task, error) {
	var t task.Task
	if err := c.do(ctx, http.MethodPost, "/todos/add", nil, d, &t); err != nil {
		return task.Task{}, fmt.Errorf("add todo: %w", err)
	}
	return t, nil
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	log := c.log.With(
		zap.String("request_id", reqID),
		zap.String("method", method),
		zap.String("url", target),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err), zap.Duration("latency", time.Since(start)))
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	log.Debug("response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, URL: target, Code: resp.StatusCode, Body: truncate(string(data), 200)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
