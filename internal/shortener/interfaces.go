package shortener

import (
	"context"
	"time"
)

// Shortener defines the interface for the shortening backend.
type Shortener interface {
	// Shorten sends exactly one request and returns the short URL for longURL
	Shorten(ctx context.Context, longURL string) (string, error)
}

// Configurable is a backend client whose address and deadline can change at runtime.
type Configurable interface {
	SetBaseURL(baseURL string)
	SetTimeout(timeout time.Duration)
}

var (
	_ Shortener    = (*Client)(nil)
	_ Configurable = (*Client)(nil)
)
