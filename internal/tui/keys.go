package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Light  key.Binding
	Dark   key.Binding
	System key.Binding
	FlipOS key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Light:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "light")),
		Dark:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark")),
		System: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "use system")),
		FlipOS: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "flip OS theme")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.System, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Light, k.Dark},
		{k.System, k.FlipOS},
		{k.Help, k.Quit},
	}
}
