package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/playground/internal/theme"
)

// ThemeChangedMsg reports that the engine changed state. State is the
// transition that triggered it and may already be stale on arrival.
type ThemeChangedMsg struct {
	State theme.State
}

// ListenTheme forwards engine transitions to send, typically
// (*tea.Program).Send. Delivery is asynchronous because a transition may be
// triggered from inside Update, where a blocking Send would deadlock.
func ListenTheme(engine *theme.Engine, send func(tea.Msg)) (cancel func()) {
	return engine.OnChange(func(s theme.State) {
		go send(ThemeChangedMsg{State: s})
	})
}
