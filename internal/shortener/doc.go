package shortener

// Package shortener is the HTTP client for the remote shortening backend.
// It sends POST /shorten with a JSON body and turns the reply into a short
// URL, a ServiceError reported by the backend, or an error wrapping
// ErrTransport when the exchange itself could not complete.
