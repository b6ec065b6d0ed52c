package ui

import "github.com/charmbracelet/lipgloss"

// Styles are the surface styles of the showcase.
type Styles struct {
	NavLogo lipgloss.Style
	NavLink lipgloss.Style

	Subtitle    lipgloss.Style
	HeroBold    lipgloss.Style
	HeroRegular lipgloss.Style
	Button      lipgloss.Style

	Card lipgloss.Style

	FooterHeading lipgloss.Style
	FooterText    lipgloss.Style
	FooterMuted   lipgloss.Style

	Toggle       lipgloss.Style
	ToggleActive lipgloss.Style
	Badge        lipgloss.Style

	Help lipgloss.Style
}

// NewStyles builds Styles for r. A nil renderer means the lipgloss default.
func NewStyles(r *lipgloss.Renderer, p Palette) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	base := r.NewStyle().Foreground(p.Surface.OnBase)

	return Styles{
		NavLogo: base.Bold(true).Foreground(p.Primary.Base),
		NavLink: base.Foreground(p.Neutral.Base).PaddingLeft(2),

		Subtitle:    base.Foreground(p.Neutral.Base).Italic(true),
		HeroBold:    base.Bold(true).Foreground(p.Primary.Base),
		HeroRegular: base.Foreground(p.Secondary.Base),
		Button: base.
			Bold(true).
			Background(p.Primary.Base).
			Foreground(p.Primary.OnBase).
			Padding(0, 2),

		Card: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface.Contrast).
			Padding(1, 2),

		FooterHeading: base.Bold(true).Foreground(p.Secondary.Base),
		FooterText:    base,
		FooterMuted:   base.Foreground(p.Neutral.Muted),

		Toggle: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Neutral.Muted).
			Padding(0, 1),
		ToggleActive: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary.Contrast).
			Foreground(p.Primary.Contrast).
			Bold(true).
			Padding(0, 1),
		Badge: base.
			Background(p.Surface.Muted).
			Foreground(p.Surface.OnBase).
			Padding(0, 1),

		Help: base.Foreground(p.Neutral.Muted).MarginTop(1),
	}
}

// CardWidth splits total into n card widths, leaving gap cells between
// cards. It never returns less than floor.
func CardWidth(total, n, gap, floor int) int {
	if n <= 0 {
		return floor
	}
	return max((total-gap*(n-1))/n, floor)
}
