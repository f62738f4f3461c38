package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"todoboard/pkg/task"
)

func TestListSendsLimitAndDecodesTodos(t *testing.T) {
	var gotLimit, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/todos" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotLimit = r.URL.Query().Get("limit")
		gotReqID = r.Header.Get(RequestIDHeader)
		w.Write([]byte(`{"todos":[{"id":1,"todo":"a","completed":true,"userId":5},{"id":2,"todo":"b","completed":false,"userId":6}],"total":2,"skip":0,"limit":2}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", 0, zap.NewNop())
	got, err := c.List(context.Background(), 100)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotLimit != "100" {
		t.Errorf("limit = %q, want 100", gotLimit)
	}
	if gotReqID == "" {
		t.Error("missing request id header")
	}
	if len(got) != 2 || got[0].Todo != "a" || !got[0].Completed || got[1].UserID != 6 {
		t.Errorf("todos = %+v", got)
	}
}

func TestListFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", 500, `{"message":"boom"}`},
		{"not json", 200, `<html>oops</html>`},
		{"missing todos", 200, `{"message":"nope"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			if _, err := New(srv.URL, 0, zap.NewNop()).List(context.Background(), 100); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestListStatusErrorIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0, zap.NewNop()).List(context.Background(), 10)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if se.Code != http.StatusServiceUnavailable {
		t.Errorf("code = %d", se.Code)
	}
}

func TestCreatePostsDraft(t *testing.T) {
	var got task.Draft
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/todos/add" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(201)
		w.Write([]byte(`{"id":255,"todo":"Buy milk","completed":false,"userId":1}`))
	}))
	defer srv.Close()

	created, err := New(srv.URL, 0, zap.NewNop()).Create(context.Background(), task.Draft{Todo: "Buy milk", UserID: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("content type = %q", contentType)
	}
	if got.Todo != "Buy milk" || got.Completed || got.UserID != 1 {
		t.Errorf("sent draft = %+v", got)
	}
	if created.ID != 255 || created.Todo != "Buy milk" {
		t.Errorf("created = %+v", created)
	}
}

func TestCreateTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := New(url, 0, zap.NewNop()).Create(context.Background(), task.Draft{Todo: "x", UserID: 1}); err == nil {
		t.Fatal("expected error from closed server")
	}
}
