// Package testutil provides a recording fake of the AyurSetu backend for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// DecodeBody unmarshals the recorded JSON body into v.
func (r RecordedRequest) DecodeBody(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("decode recorded body %q: %v", r.Body, err)
	}
}

// Backend is an httptest server routed with chi that records every request.
// Unrouted requests get a 404 with a backend style error payload.
type Backend struct {
	t      *testing.T
	server *httptest.Server
	router chi.Router

	mu       sync.Mutex
	requests []RecordedRequest
}

func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{t: t, router: chi.NewRouter()}
	b.router.Use(b.record)
	b.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, map[string]any{"status": 404, "error": "Not Found", "message": "no route for " + r.URL.Path})
	})
	b.server = httptest.NewServer(b.router)
	t.Cleanup(b.server.Close)
	return b
}

func (b *Backend) URL() string {
	return b.server.URL
}

// Handle responds to method+pattern with status and body. A string body is
// written as plain text, anything else as JSON, nil as an empty body.
func (b *Backend) Handle(method, pattern string, status int, body any) {
	b.router.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		switch v := body.(type) {
		case nil:
			w.WriteHeader(status)
		case string:
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, v)
		default:
			WriteJSON(w, status, v)
		}
	}))
}

func (b *Backend) HandleFunc(method, pattern string, h http.HandlerFunc) {
	b.router.Method(method, pattern, h)
}

func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RecordedRequest(nil), b.requests...)
}

// Last returns the most recent request and fails the test when there is none.
func (b *Backend) Last() RecordedRequest {
	b.t.Helper()
	reqs := b.Requests()
	if len(reqs) == 0 {
		b.t.Fatal("backend received no requests")
	}
	return reqs[len(reqs)-1]
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
