package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/playground/internal/theme"
)

// Update handles Bubble Tea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.title.Update(msg)
		m.footer.Update(msg)
		return m, nil

	case ThemeChangedMsg:
		// Deliveries are unordered; the engine holds the current state.
		m.state = m.engine.Observe()
		m.syncKeys()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.state = m.engine.Toggle()

	case key.Matches(msg, m.keys.Light):
		m.setExplicit(theme.Light)

	case key.Matches(msg, m.keys.Dark):
		m.setExplicit(theme.Dark)

	case key.Matches(msg, m.keys.System):
		m.state = m.engine.ClearOverride()

	case key.Matches(msg, m.keys.FlipOS):
		dark := m.manual.Flip()
		m.log.WithFields(map[string]any{"dark": dark}).Debug("manual OS signal flipped")
		m.state = m.engine.Observe()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.syncKeys()
	return m, nil
}

func (m *Model) setExplicit(mode theme.Mode) {
	state, err := m.engine.SetExplicit(mode)
	if err != nil {
		m.log.Error(err, "set theme")
		return
	}
	m.state = state
}
