package model

// Phase represents where the submission state machine currently is
type Phase string

const (
	// PhaseIdle means no submission is running; the state may carry a result or an error
	PhaseIdle Phase = "Idle"

	// PhaseValidating means the input is being checked before any request is made
	PhaseValidating Phase = "Validating"

	// PhaseSubmitting means a shorten request is in flight
	PhaseSubmitting Phase = "Submitting"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsActive returns true while a submission is being processed
func (p Phase) IsActive() bool {
	return p == PhaseValidating || p == PhaseSubmitting
}

// ErrorKind classifies the error currently held by the state
type ErrorKind string

const (
	ErrorKindNone       ErrorKind = ""
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindService    ErrorKind = "service"
	ErrorKindTransport  ErrorKind = "transport"
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	if k == ErrorKindNone {
		return "none"
	}
	return string(k)
}

// User-facing messages for each error kind
const (
	MessageInvalidURL     = "Please enter a valid URL."
	MessageServiceFailed  = "Something went wrong. Please try again."
	MessageBackendOffline = "Failed to connect to the backend service. Please ensure the backend is running."
)
