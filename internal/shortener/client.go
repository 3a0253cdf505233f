package shortener

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// HTTP constants
const (
	ShortenPath      = "shorten"
	ContentTypeJSON  = "application/json"
	HeaderRequestID  = "X-Request-ID"
	MaxResponseBytes = 1 << 20
)

// Defaults
const (
	DefaultBaseURL = "http://127.0.0.1:5000"
	DefaultTimeout = 10 * time.Second
)

// Request is the body of POST /shorten
type Request struct {
	URL string `json:"url"`
}

// Response is the body returned by POST /shorten, both on success and on failure
type Response struct {
	ShortURL string `json:"short_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Client talks to the shortening backend over HTTP
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTransport sets the round tripper of the underlying http.Client
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.httpClient.Transport = rt
		}
	}
}

// NewClient creates a client for the backend at baseURL. A zero or negative
// timeout disables the per-request deadline.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend address
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL changes the backend address used by subsequent requests
func (c *Client) SetBaseURL(baseURL string) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c.mu.Lock()
	c.baseURL = baseURL
	c.mu.Unlock()
}

// SetTimeout changes the per-request deadline used by subsequent requests
func (c *Client) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	c.timeout = timeout
	c.mu.Unlock()
}

// Shorten posts longURL to the backend and returns the short URL.
// It never retries.
func (c *Client) Shorten(ctx context.Context, longURL string) (string, error) {
	c.mu.RLock()
	baseURL, timeout := c.baseURL, c.timeout
	c.mu.RUnlock()

	endpoint, err := url.JoinPath(baseURL, ShortenPath)
	if err != nil {
		return "", fmt.Errorf("%w: invalid backend address %q: %w", ErrTransport, baseURL, err)
	}

	payload, err := json.Marshal(Request{URL: longURL})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %w", ErrTransport, err)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", ContentTypeJSON)
	req.Header.Set("Accept", ContentTypeJSON)
	req.Header.Set(HeaderRequestID, uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	var decoded Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		log.Debug().
			Int("status", resp.StatusCode).
			Str("request_id", req.Header.Get(HeaderRequestID)).
			Msg("Backend reply is not JSON")
		return "", fmt.Errorf("%w: decode response (status %d): %w", ErrTransport, resp.StatusCode, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &ServiceError{StatusCode: resp.StatusCode, Message: decoded.Error}
	}

	if decoded.ShortURL == "" {
		return "", fmt.Errorf("%w: response has no short_url (status %d)", ErrTransport, resp.StatusCode)
	}

	return decoded.ShortURL, nil
}
