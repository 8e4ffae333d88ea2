// Package console provides the text display the game writes to.
package console

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Display is a text sink that can also be cleared.
type Display interface {
	io.Writer
	Clear() error
}

// Terminal writes to a real terminal (or a pipe) and clears it with ANSI
// escapes.
type Terminal struct {
	out         *termenv.Output
	promptStyle lipgloss.Style
}

var _ Display = (*Terminal)(nil)

// NewTerminal wraps w. Styling is only applied when w is a color-capable
// terminal, so piped output stays plain.
func NewTerminal(w io.Writer) *Terminal {
	renderer := lipgloss.NewRenderer(w)
	return &Terminal{
		out: termenv.NewOutput(w),
		promptStyle: renderer.NewStyle().
			Foreground(lipgloss.Color("240")), // dark grey
	}
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() error {
	t.out.ClearScreen()
	return nil
}

// Prompt renders the input prompt.
func (t *Terminal) Prompt(text string) string {
	return t.promptStyle.Render(text)
}

// Transcript is an in-memory display. Clear discards everything written
// so far, the way a cleared screen would.
type Transcript struct {
	mu     sync.Mutex
	buf    strings.Builder
	clears int
}

var _ Display = (*Transcript)(nil)

func (t *Transcript) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.Write(p)
}

func (t *Transcript) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.Reset()
	t.clears++
	return nil
}

// String returns the text written since the last Clear.
func (t *Transcript) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}

// Clears counts calls to Clear.
func (t *Transcript) Clears() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.clears
}
