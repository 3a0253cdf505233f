package platform

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFyneClipboard_SetContent(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	clip := NewFyneClipboard(app.Clipboard())
	require.NoError(t, clip.SetContent("http://sho.rt/abc"))
	assert.Equal(t, "http://sho.rt/abc", app.Clipboard().Content())
}

func TestFyneClipboard_Nil(t *testing.T) {
	clip := NewFyneClipboard(nil)
	assert.ErrorIs(t, clip.SetContent("x"), ErrClipboardUnavailable)
}

func TestNewSystemClipboard(t *testing.T) {
	clip := NewSystemClipboard()

	assert.NotNil(t, clip.write)
	assert.Equal(t, ClipboardWriteTimeout, clip.timeout)
}

func TestSystemClipboard_SetContent(t *testing.T) {
	var written string
	clip := &SystemClipboard{
		write: func(text string) error {
			written = text
			return nil
		},
		timeout: time.Second,
	}

	require.NoError(t, clip.SetContent("http://sho.rt/abc"))
	assert.Equal(t, "http://sho.rt/abc", written)
}

func TestSystemClipboard_Unsupported(t *testing.T) {
	clip := &SystemClipboard{
		unsupported: true,
		write: func(string) error {
			t.Fatal("write must not be called")
			return nil
		},
		timeout: time.Second,
	}

	err := clip.SetContent("x")
	assert.ErrorIs(t, err, ErrClipboardUnavailable)
	assert.Contains(t, err.Error(), "wl-copy, xclip or xsel")
}

func TestSystemClipboard_WriteFails(t *testing.T) {
	clip := &SystemClipboard{
		write:   func(string) error { return errors.New("exit status 1") },
		timeout: time.Second,
	}

	err := clip.SetContent("x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrClipboardUnavailable)
	assert.Contains(t, err.Error(), "write system clipboard: exit status 1")
}

func TestSystemClipboard_BlockedWriteTimesOut(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	clip := &SystemClipboard{
		write: func(string) error {
			<-release
			return nil
		},
		timeout: 50 * time.Millisecond,
	}

	start := time.Now()
	err := clip.SetContent("x")

	assert.ErrorIs(t, err, ErrClipboardTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

// A clipboard helper like xclip forks a child that keeps the selection and
// inherits stdout/stderr. Waiting on its output never finishes while the
// child lives; SetContent must still return within its timeout.
func TestSystemClipboard_ForkingCommandReturnsInTime(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not found")
	}

	clip := &SystemClipboard{
		write: func(text string) error {
			cmd := exec.Command(sh, "-c", "cat >/dev/null; sleep 3 & exit 0")
			cmd.Stdin = strings.NewReader(text)
			_, err := cmd.CombinedOutput()
			return err
		},
		timeout: 200 * time.Millisecond,
	}

	start := time.Now()
	err = clip.SetContent("http://sho.rt/abc")

	assert.ErrorIs(t, err, ErrClipboardTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}
