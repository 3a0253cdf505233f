package shortener

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendReply struct {
	status int
	body   string
}

type recorder struct {
	mu   sync.Mutex
	seen []Request
}

func (r *recorder) add(req Request) {
	r.mu.Lock()
	r.seen = append(r.seen, req)
	r.mu.Unlock()
}

func (r *recorder) requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Request(nil), r.seen...)
}

// newBackend starts a fake shortening backend that answers POST /shorten
// with reply and records the decoded requests.
func newBackend(t *testing.T, reply backendReply, rec *recorder, hits *int32) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/shorten", func(w http.ResponseWriter, req *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		assert.Equal(t, ContentTypeJSON, req.Header.Get("Content-Type"))
		assert.NotEmpty(t, req.Header.Get(HeaderRequestID))

		var body Request
		if err := json.NewDecoder(req.Body).Decode(&body); err == nil && rec != nil {
			rec.add(body)
		}

		w.Header().Set("Content-Type", ContentTypeJSON)
		w.WriteHeader(reply.status)
		_, _ = w.Write([]byte(reply.body))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c.SetBaseURL("http://localhost:9000")
	assert.Equal(t, "http://localhost:9000", c.BaseURL())

	c.SetBaseURL("")
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestShorten_Success(t *testing.T) {
	rec := &recorder{}
	var hits int32
	srv := newBackend(t, backendReply{status: http.StatusOK, body: `{"short_url":"http://sho.rt/abc"}`}, rec, &hits)

	c := NewClient(srv.URL, time.Second)
	short, err := c.Shorten(context.Background(), "https://example.com/long")

	require.NoError(t, err)
	assert.Equal(t, "http://sho.rt/abc", short)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	seen := rec.requests()
	require.Len(t, seen, 1)
	assert.Equal(t, "https://example.com/long", seen[0].URL)
}

func TestShorten_TrailingSlashBaseURL(t *testing.T) {
	srv := newBackend(t, backendReply{status: http.StatusCreated, body: `{"short_url":"http://sho.rt/x"}`}, nil, nil)

	c := NewClient(srv.URL+"/", time.Second)
	short, err := c.Shorten(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "http://sho.rt/x", short)
}

func TestShorten_ServiceErrors(t *testing.T) {
	tests := []struct {
		name            string
		reply           backendReply
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "error field",
			reply:           backendReply{status: http.StatusTooManyRequests, body: `{"error":"rate limited"}`},
			expectedStatus:  http.StatusTooManyRequests,
			expectedMessage: "rate limited",
		},
		{
			name:            "no error field",
			reply:           backendReply{status: http.StatusInternalServerError, body: `{}`},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "",
		},
		{
			name:            "bad request",
			reply:           backendReply{status: http.StatusBadRequest, body: `{"error":"Invalid URL"}`},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int32
			srv := newBackend(t, tt.reply, nil, &hits)

			_, err := NewClient(srv.URL, time.Second).Shorten(context.Background(), "https://example.com")
			require.Error(t, err)

			var serviceErr *ServiceError
			require.True(t, errors.As(err, &serviceErr))
			assert.Equal(t, tt.expectedStatus, serviceErr.StatusCode)
			assert.Equal(t, tt.expectedMessage, serviceErr.Message)
			assert.False(t, errors.Is(err, ErrTransport))
			assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "no retries expected")
		})
	}
}

func TestShorten_TransportErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply backendReply
	}{
		{"html body on success", backendReply{status: http.StatusOK, body: `<html>ok</html>`}},
		{"html body on failure", backendReply{status: http.StatusBadGateway, body: `<html>bad gateway</html>`}},
		{"empty body", backendReply{status: http.StatusInternalServerError, body: ``}},
		{"missing short_url", backendReply{status: http.StatusOK, body: `{"result":"http://sho.rt/abc"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, tt.reply, nil, nil)

			_, err := NewClient(srv.URL, time.Second).Shorten(context.Background(), "https://example.com")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTransport), "got %v", err)
		})
	}
}

func TestShorten_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewClient(addr, time.Second).Shorten(context.Background(), "https://example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestShorten_Timeout(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/shorten", func(w http.ResponseWriter, req *http.Request) {
		select {
		case <-req.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := NewClient(srv.URL, 50*time.Millisecond).Shorten(context.Background(), "https://example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestShorten_InvalidBaseURL(t *testing.T) {
	_, err := NewClient("http://[::1", time.Second).Shorten(context.Background(), "https://example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestWithTransport(t *testing.T) {
	srv := newBackend(t, backendReply{status: http.StatusOK, body: `{"short_url":"http://sho.rt/t"}`}, nil, nil)

	var used int32
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		atomic.AddInt32(&used, 1)
		return http.DefaultTransport.RoundTrip(req)
	})

	short, err := NewClient(srv.URL, time.Second, WithTransport(rt)).Shorten(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "http://sho.rt/t", short)
	assert.Equal(t, int32(1), atomic.LoadInt32(&used))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
