package model

// State is the complete client state owned by the submission controller.
// Treat values as immutable: Reduce returns a new State and never writes
// through the History slice of its argument.
type State struct {
	Input     string
	Phase     Phase
	Result    *ShortenResult
	Error     string
	ErrorKind ErrorKind
	History   []HistoryEntry
	Copied    bool
	// CopyToken identifies the copy action that set Copied. A reset that
	// carries a different token is stale and ignored.
	CopyToken uint64
}

// NewState returns the initial Idle state with an empty history
func NewState() State {
	return State{Phase: PhaseIdle}
}

// Loading reports whether a shorten request is in flight
func (s State) Loading() bool {
	return s.Phase == PhaseSubmitting
}

// HasError reports whether an error message is set
func (s State) HasError() bool {
	return s.Error != ""
}

// HasResult reports whether a short URL is available for display
func (s State) HasResult() bool {
	return s.Result != nil && s.Result.ShortURL != ""
}

// Event is an input to Reduce
type Event interface {
	apply(State) State
}

// InputChanged records a keystroke in the URL input
type InputChanged struct {
	Text string
}

// SubmitRequested starts a new attempt and moves the machine to Validating
type SubmitRequested struct{}

// ValidationFailed ends an attempt whose input is not a URL
type ValidationFailed struct{}

// RequestStarted moves a validated attempt to Submitting
type RequestStarted struct{}

// RequestSucceeded ends an attempt with a short URL from the backend
type RequestSucceeded struct {
	Entry HistoryEntry
}

// RequestFailed ends an attempt with a service or transport error
type RequestFailed struct {
	Kind    ErrorKind
	Message string
}

// CopySucceeded marks a clipboard write done by the copy action Token
type CopySucceeded struct {
	Token uint64
}

// CopyExpired is the delayed reset scheduled by the copy action Token
type CopyExpired struct {
	Token uint64
}

// Reduce applies e to s and returns the resulting state
func Reduce(s State, e Event) State {
	if e == nil {
		return s
	}
	return e.apply(s)
}

func (e InputChanged) apply(s State) State {
	s.Input = e.Text
	return s
}

func (SubmitRequested) apply(s State) State {
	s.Phase = PhaseValidating
	s.Error = ""
	s.ErrorKind = ErrorKindNone
	return s
}

func (ValidationFailed) apply(s State) State {
	s.Phase = PhaseIdle
	s.Error = MessageInvalidURL
	s.ErrorKind = ErrorKindValidation
	s.Result = nil
	s.Copied = false
	return s
}

func (RequestStarted) apply(s State) State {
	s.Phase = PhaseSubmitting
	s.Error = ""
	s.ErrorKind = ErrorKindNone
	s.Copied = false
	return s
}

func (e RequestSucceeded) apply(s State) State {
	history := make([]HistoryEntry, len(s.History), len(s.History)+1)
	copy(history, s.History)
	s.History = append(history, e.Entry)

	s.Phase = PhaseIdle
	s.Result = e.Entry.Result()
	s.Error = ""
	s.ErrorKind = ErrorKindNone
	s.Input = ""
	return s
}

func (e RequestFailed) apply(s State) State {
	kind := e.Kind
	if kind == ErrorKindNone {
		kind = ErrorKindService
	}
	msg := e.Message
	if msg == "" {
		switch kind {
		case ErrorKindTransport:
			msg = MessageBackendOffline
		case ErrorKindValidation:
			msg = MessageInvalidURL
		default:
			msg = MessageServiceFailed
		}
	}

	s.Phase = PhaseIdle
	s.Error = msg
	s.ErrorKind = kind
	s.Result = nil
	return s
}

func (e CopySucceeded) apply(s State) State {
	s.Copied = true
	s.CopyToken = e.Token
	return s
}

func (e CopyExpired) apply(s State) State {
	if e.Token != s.CopyToken {
		return s
	}
	s.Copied = false
	return s
}
