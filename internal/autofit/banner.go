package autofit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	boldFill    = "█"
	regularFill = "▓"
)

// Banner draws a bold and a regular run of text at an integer size. Size 1
// is the text as typed; larger sizes draw block letters whose pixels are
// size-1 cells wide.
type Banner struct {
	Bold    lipgloss.Style
	Regular lipgloss.Style
}

// NewBanner returns a Banner using the given styles for each run.
func NewBanner(bold, regular lipgloss.Style) *Banner {
	return &Banner{Bold: bold, Regular: regular}
}

type run struct {
	text   string
	fill   string
	style  lipgloss.Style
	styled bool
}

func (b *Banner) runs(bold, regular string) []run {
	var out []run
	if bold != "" {
		out = append(out, run{text: bold, fill: boldFill, style: b.Bold, styled: true})
	}
	if regular != "" {
		if len(out) > 0 {
			out = append(out, run{text: " "})
		}
		out = append(out, run{text: regular, fill: regularFill, style: b.Regular, styled: true})
	}
	return out
}

func (r run) render(s string) string {
	if !r.styled || s == "" {
		return s
	}
	return r.style.Render(s)
}

// Render returns the text drawn at size. Sizes below 1 render as 1.
func (b *Banner) Render(bold, regular string, size int) string {
	runs := b.runs(bold, regular)
	if len(runs) == 0 {
		return ""
	}
	if size <= 1 {
		var sb strings.Builder
		for _, r := range runs {
			sb.WriteString(r.render(r.text))
		}
		return sb.String()
	}

	scale := size - 1
	// cases.Caser keeps state between calls.
	upper := cases.Upper(language.Und)
	gap := strings.Repeat(" ", scale)

	var lines [glyphRows]strings.Builder
	for i, r := range runs {
		var raw [glyphRows]strings.Builder
		clusters := 0
		g := uniseg.NewGraphemes(upper.String(r.text))
		for g.Next() {
			if i > 0 || clusters > 0 {
				for row := range raw {
					raw[row].WriteString(gap)
				}
			}
			drawCluster(&raw, g.Str(), scale, r.fill)
			clusters++
		}
		for row := range lines {
			lines[row].WriteString(r.render(raw[row].String()))
		}
	}

	repeat := (scale + 1) / 2
	out := make([]string, 0, glyphRows*repeat)
	for row := range lines {
		line := lines[row].String()
		for range repeat {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Width is the horizontal extent of Render(bold, regular, size) in cells.
func (b *Banner) Width(bold, regular string, size int) int {
	return lipgloss.Width(b.Render(bold, regular, size))
}

func drawCluster(raw *[glyphRows]strings.Builder, cluster string, scale int, fill string) {
	if runes := []rune(cluster); len(runes) == 1 {
		if glyph, ok := glyphs[runes[0]]; ok {
			lit, dark := strings.Repeat(fill, scale), strings.Repeat(" ", scale)
			for row, pixels := range glyph {
				for _, px := range pixels {
					if px == '#' {
						raw[row].WriteString(lit)
					} else {
						raw[row].WriteString(dark)
					}
				}
			}
			return
		}
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		return
	}
	for row := range raw {
		if row == glyphRows/2 {
			raw[row].WriteString(strings.Repeat(cluster, scale))
		} else {
			raw[row].WriteString(strings.Repeat(" ", w*scale))
		}
	}
}
