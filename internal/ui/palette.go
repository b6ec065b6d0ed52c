// Package ui holds the adaptive palette and the surface styles shared by the
// showcase and the CLI. Every colour is a lipgloss.AdaptiveColor, so the
// same styles render light or dark depending on the renderer's background.
package ui

import "github.com/charmbracelet/lipgloss"

// ColourSet is a semantic colour slot:
//
//   - Base: the background or brand colour
//   - OnBase: text drawn on top of Base
//   - Muted: a quieter variant for borders and secondary text
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the colour slots used by the showcase.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Neutral   ColourSet
}

// DefaultPalette returns the playground palette.
func DefaultPalette() Palette {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Palette{
		Primary: ColourSet{
			Base:     ac("#4f46e5", "#818cf8"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#4338ca", "#6366f1"),
			Contrast: ac("#f59e0b", "#fbbf24"),
		},
		Secondary: ColourSet{
			Base:     ac("#0f766e", "#2dd4bf"),
			OnBase:   ac("#f0fdfa", "#042f2e"),
			Muted:    ac("#115e59", "#14b8a6"),
			Contrast: ac("#db2777", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#4f46e5", "#818cf8"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#64748b"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}
}
