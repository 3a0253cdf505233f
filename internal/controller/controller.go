package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ytget/url-shortener/internal/model"
	"github.com/ytget/url-shortener/internal/platform"
	"github.com/ytget/url-shortener/internal/shortener"
)

// CopyResetDelay is how long the copied flag stays set after a copy
const CopyResetDelay = 2000 * time.Millisecond

// Timer is a pending delayed call that can be cancelled
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d
type Scheduler func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Controller owns the client state
type Controller struct {
	mu        sync.Mutex
	state     model.State
	shortener shortener.Shortener
	clipboard platform.Clipboard

	schedule  Scheduler
	now       func() time.Time
	copyDelay time.Duration
	copyTimer Timer
	copySeq   uint64

	onUpdate func(model.State) // callback for UI updates
}

// Option configures a Controller
type Option func(*Controller)

// WithScheduler replaces time.AfterFunc for the copied-flag reset
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.schedule = s
		}
	}
}

// WithClock replaces time.Now for history timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCopyResetDelay overrides CopyResetDelay
func WithCopyResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.copyDelay = d
		}
	}
}

// New creates a controller in the Idle state
func New(s shortener.Shortener, clipboard platform.Clipboard, opts ...Option) *Controller {
	c := &Controller{
		state:     model.NewState(),
		shortener: s,
		clipboard: clipboard,
		schedule:  afterFunc,
		now:       time.Now,
		copyDelay: CopyResetDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUpdateCallback sets the function that receives a snapshot after every
// state change. It is called without the controller lock held.
func (c *Controller) SetUpdateCallback(callback func(model.State)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// State returns a snapshot of the current state
func (c *Controller) State() model.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// History returns a copy of the session history in submission order
func (c *Controller) History() []model.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := make([]model.HistoryEntry, len(c.state.History))
	copy(history, c.state.History)
	return history
}

// SetInput records the current content of the URL input
func (c *Controller) SetInput(text string) {
	c.dispatch(model.InputChanged{Text: text})
}

// Submit validates input and, when it is a URL, sends exactly one shorten
// request. It blocks until the request finishes and returns the resulting
// state. Presenters disable their trigger while State().Loading() is true;
// Submit itself does not reject overlapping calls.
func (c *Controller) Submit(ctx context.Context, input string) model.State {
	input = strings.TrimSpace(input)

	c.dispatch(model.SubmitRequested{})

	if !model.Validate(input) {
		log.Info().Str("input", input).Msg("Rejected invalid URL")
		return c.dispatch(model.ValidationFailed{})
	}

	c.dispatch(model.RequestStarted{})
	log.Info().Str("url", input).Msg("Submitting URL")

	shortURL, err := c.shortener.Shorten(ctx, input)
	if err != nil {
		kind, msg := shortener.Classify(err)
		log.Warn().
			Err(err).
			Str("url", input).
			Str("kind", kind.String()).
			Msg("Shorten request failed")
		return c.dispatch(model.RequestFailed{Kind: kind, Message: msg})
	}

	entry := model.NewHistoryEntry(input, shortURL, c.now())
	log.Info().
		Str("url", input).
		Str("short_url", shortURL).
		Str("entry_id", entry.ID).
		Msg("URL shortened")
	return c.dispatch(model.RequestSucceeded{Entry: entry})
}

// Copy places text on the clipboard and sets the copied flag for the reset
// delay. A new copy stops the pending reset of the previous one. Empty text
// is ignored. When the clipboard write fails the flag is left unchanged.
func (c *Controller) Copy(text string) error {
	if text == "" {
		return nil
	}

	if c.clipboard == nil {
		return fmt.Errorf("copy to clipboard: %w", platform.ErrClipboardUnavailable)
	}
	if err := c.clipboard.SetContent(text); err != nil {
		log.Warn().Err(err).Msg("Clipboard write failed")
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	c.mu.Lock()
	c.copySeq++
	token := c.copySeq
	if c.copyTimer != nil {
		c.copyTimer.Stop()
	}
	c.copyTimer = c.schedule(c.copyDelay, func() {
		c.dispatch(model.CopyExpired{Token: token})
	})
	c.state = model.Reduce(c.state, model.CopySucceeded{Token: token})
	snapshot, callback := c.state, c.onUpdate
	c.mu.Unlock()

	log.Debug().Uint64("token", token).Msg("Copied to clipboard")

	if callback != nil {
		callback(snapshot)
	}
	return nil
}

// Close stops the pending copied-flag reset, if any
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.copyTimer != nil {
		c.copyTimer.Stop()
		c.copyTimer = nil
	}
}

// dispatch applies e and notifies the subscriber
func (c *Controller) dispatch(e model.Event) model.State {
	c.mu.Lock()
	c.state = model.Reduce(c.state, e)
	snapshot, callback := c.state, c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
	return snapshot
}
