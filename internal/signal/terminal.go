package signal

import (
	"context"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Terminal asks the terminal emulator for its background colour through
// lipgloss. It only answers when Output is a TTY, and it only asks once:
// a later query could consume input meant for a running program.
type Terminal struct {
	Output *os.File

	once sync.Once
	dark bool
	err  error
}

// NewTerminal returns a Terminal probe on stdout.
func NewTerminal() *Terminal {
	return &Terminal{Output: os.Stdout}
}

// Name identifies the probe.
func (t *Terminal) Name() string {
	return "terminal"
}

// PrefersDark reports whether the terminal background is dark.
func (t *Terminal) PrefersDark(context.Context) (bool, error) {
	t.once.Do(func() {
		if t.Output == nil || !term.IsTerminal(int(t.Output.Fd())) {
			t.err = unsupported("terminal", "output is not a terminal")
			return
		}
		t.dark = lipgloss.NewRenderer(t.Output).HasDarkBackground()
	})
	return t.dark, t.err
}
