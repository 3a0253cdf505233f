package shortener

import (
	"errors"
	"fmt"

	"github.com/ytget/url-shortener/internal/model"
)

// ErrTransport marks failures where no usable reply was received: the
// backend was unreachable, timed out, or answered with a body that is not
// the expected JSON.
var ErrTransport = errors.New("shortener: transport failure")

// ServiceError is a non-success reply from the backend
type ServiceError struct {
	StatusCode int
	// Message is the "error" field of the reply body, possibly empty
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("shortener: backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("shortener: backend returned %d", e.StatusCode)
}

// UserMessage returns the text to show for this error
func (e *ServiceError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return model.MessageServiceFailed
}

// Classify maps an error returned by Shorten to the error kind and the
// user-facing message stored in the client state.
func Classify(err error) (model.ErrorKind, string) {
	if err == nil {
		return model.ErrorKindNone, ""
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return model.ErrorKindService, serviceErr.UserMessage()
	}

	return model.ErrorKindTransport, model.MessageBackendOffline
}
