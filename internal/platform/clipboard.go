package platform

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"github.com/atotto/clipboard"
)

// ClipboardWriteTimeout bounds a single write to the system clipboard
const ClipboardWriteTimeout = 5 * time.Second

var (
	// ErrClipboardUnavailable is returned when no clipboard mechanism can be used
	ErrClipboardUnavailable = errors.New("clipboard is not available")

	// ErrClipboardTimeout is returned when the system clipboard does not accept text in time
	ErrClipboardTimeout = errors.New("clipboard write timed out")
)

// Clipboard writes text to the system clipboard
type Clipboard interface {
	SetContent(text string) error
}

// FyneClipboard adapts the clipboard of a running Fyne app
type FyneClipboard struct {
	clipboard fyne.Clipboard
}

// NewFyneClipboard wraps a Fyne clipboard
func NewFyneClipboard(clipboard fyne.Clipboard) *FyneClipboard {
	return &FyneClipboard{clipboard: clipboard}
}

// SetContent writes text to the Fyne clipboard
func (c *FyneClipboard) SetContent(text string) error {
	if c == nil || c.clipboard == nil {
		return ErrClipboardUnavailable
	}
	c.clipboard.SetContent(text)
	return nil
}

// SystemClipboard writes to the OS clipboard where no Fyne app is running.
// On Linux and the BSDs it needs wl-copy, xclip or xsel; macOS uses pbcopy
// and Windows the native API.
type SystemClipboard struct {
	unsupported bool
	write       func(text string) error
	timeout     time.Duration
}

// NewSystemClipboard creates a clipboard for the current OS
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
		timeout:     ClipboardWriteTimeout,
	}
}

// SetContent writes text to the system clipboard. It returns once the write
// finishes or the timeout elapses, whichever comes first.
func (c *SystemClipboard) SetContent(text string) error {
	if c.unsupported || c.write == nil {
		return fmt.Errorf("%w: install wl-copy, xclip or xsel", ErrClipboardUnavailable)
	}

	done := make(chan error, 1)
	go func() {
		done <- c.write(text)
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("write system clipboard: %w", err)
		}
		return nil
	case <-timer.C:
		return fmt.Errorf("%w after %s", ErrClipboardTimeout, c.timeout)
	}
}
