package theme

import "github.com/charmbracelet/lipgloss"

// RendererApplier returns an Applier that sets the dark-background flag of
// r, so every lipgloss.AdaptiveColor rendered through r follows the mode.
// A nil renderer targets the lipgloss default renderer.
func RendererApplier(r *lipgloss.Renderer) Applier {
	return ApplierFunc(func(mode Mode) {
		if r == nil {
			lipgloss.SetHasDarkBackground(mode == Dark)
			return
		}
		r.SetHasDarkBackground(mode == Dark)
	})
}
