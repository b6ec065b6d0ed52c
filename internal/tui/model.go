package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/playground/internal/autofit"
	"github.com/alexisbeaulieu97/playground/internal/config"
	"github.com/alexisbeaulieu97/playground/internal/logger"
	"github.com/alexisbeaulieu97/playground/internal/signal"
	"github.com/alexisbeaulieu97/playground/internal/theme"
	"github.com/alexisbeaulieu97/playground/internal/ui"
)

const (
	pageInset    = 4
	minCardWidth = 24
	cardGap      = 2
)

// Options wires the showcase to its collaborators.
type Options struct {
	Engine *theme.Engine
	// Manual is set when the OS signal is driven from the keyboard.
	Manual *signal.Manual
	Hero   config.HeroConfig
	Styles ui.Styles
	Logger *logger.Logger
}

// Model is the Bubble Tea model of the playground landing page.
type Model struct {
	engine *theme.Engine
	manual *signal.Manual
	log    *logger.Logger

	hero     config.HeroConfig
	title    *autofit.Text
	footer   *autofit.Text
	styles   ui.Styles
	keys     keyMap
	help     help.Model
	state    theme.State
	width    int
	height   int
	quitting bool
}

// NewModel constructs the showcase model.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	banner := autofit.NewBanner(opts.Styles.HeroBold, opts.Styles.HeroRegular)
	title := autofit.NewText(banner, opts.Hero.Bold, opts.Hero.Regular, log)
	title.Inset = pageInset
	footer := autofit.NewText(banner, opts.Hero.Bold, opts.Hero.Regular, log)
	footer.Inset = pageInset

	keys := defaultKeyMap()
	keys.FlipOS.SetEnabled(opts.Manual != nil)

	m := Model{
		engine: opts.Engine,
		manual: opts.Manual,
		log:    log.WithFields(map[string]any{"component": "tui"}),
		hero:   opts.Hero,
		title:  title,
		footer: footer,
		styles: opts.Styles,
		keys:   keys,
		help:   help.New(),
		state:  opts.Engine.Observe(),
	}
	m.syncKeys()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State is the theme state the model last rendered.
func (m Model) State() theme.State {
	return m.state
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) syncKeys() {
	m.keys.System.SetEnabled(m.state.Override)
}
