package autofit

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/playground/internal/logger"
)

// ResizeSource delivers container width changes.
type ResizeSource interface {
	Subscribe(fn func(width int)) (release func())
}

// Sizer is implemented by sources that know the current width up front.
type Sizer interface {
	Width() int
}

// Text keeps a bold and a regular string fitted to its container width.
// All methods are safe for concurrent use; passes run one at a time.
type Text struct {
	// Inset is subtracted from a tea.WindowSizeMsg width.
	Inset int

	mu      sync.Mutex
	banner  *Banner
	bold    string
	regular string
	width   int
	size    int
	resizes uint64
	fitter  *Fitter
	log     *logger.Logger
}

// NewText returns a Text that has not been fitted yet; it renders at size 1
// until the first pass with a positive width.
func NewText(banner *Banner, bold, regular string, log *logger.Logger) *Text {
	if log == nil {
		log = logger.Nop()
	}
	t := &Text{
		banner:  banner,
		bold:    bold,
		regular: regular,
		size:    1,
		log:     log.WithFields(map[string]any{"component": "autofit"}),
	}
	t.fitter = NewFitter(textLayout{t})
	return t
}

// textLayout exposes Text to the Fitter. Callers hold t.mu.
type textLayout struct{ t *Text }

func (l textLayout) ContainerWidth() int { return l.t.width }

func (l textLayout) TextWidth(size int) int {
	return l.t.banner.Width(l.t.bold, l.t.regular, size)
}

func (l textLayout) ApplySize(size int) { l.t.size = size }

// SetContent replaces both runs and refits.
func (t *Text) SetContent(bold, regular string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bold, t.regular = bold, regular
	t.fitLocked("content")
}

// Resize records a new container width and refits.
func (t *Text) Resize(width int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width = width
	t.resizes++
	t.fitLocked("resize")
}

// Activate subscribes to src and then fits once. A resize delivered while
// the mount width is being read wins over that width. release is
// idempotent.
func (t *Text) Activate(src ResizeSource) (release func()) {
	t.mu.Lock()
	seen := t.resizes
	t.mu.Unlock()

	cancel := src.Subscribe(t.Resize)

	width, seeded := 0, false
	if sizer, ok := src.(Sizer); ok {
		width, seeded = sizer.Width(), true
	}

	t.mu.Lock()
	if seeded && t.resizes == seen {
		t.width = width
	}
	t.fitLocked("mount")
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			if cancel != nil {
				cancel()
			}
		})
	}
}

// Update refits on tea.WindowSizeMsg. It never returns a command.
func (t *Text) Update(msg tea.Msg) tea.Cmd {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		t.Resize(ws.Width - t.Inset)
	}
	return nil
}

// View renders the text at the current size.
func (t *Text) View() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.banner.Render(t.bold, t.regular, t.size)
}

// Result reports the last applied pass; ok is false before the first one.
func (t *Text) Result() (FitResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fitter.Result()
}

// Size is the size currently applied.
func (t *Text) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

func (t *Text) fitLocked(trigger string) {
	fitted := t.fitter.Fit()
	if !t.log.Enabled("debug") {
		return
	}
	if !fitted {
		t.log.WithFields(map[string]any{"trigger": trigger, "width": t.width}).Debug("fit skipped")
		return
	}
	res, _ := t.fitter.Result()
	t.log.WithFields(map[string]any{
		"trigger": trigger,
		"width":   res.ContainerWidth,
		"size":    res.ChosenSize,
	}).Debug("text fitted")
}
