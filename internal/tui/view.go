package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/playground/internal/theme"
	"github.com/alexisbeaulieu97/playground/internal/ui"
)

var (
	navLinks = []string{"Resources", "Playground", "About"}
	mlModels = []string{"Regression", "Classification", "Neural Nets"}
	contacts = []string{"Email", "LinkedIn", "GitHub"}
)

// View renders the landing page.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderNavbar(),
		m.renderHero(),
		m.renderFeatures(),
		m.renderFooter(),
		m.styles.Help.Render(m.help.View(m.keys)),
	}

	return lipgloss.NewStyle().Padding(0, pageInset/2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m Model) renderNavbar() string {
	logo := m.styles.NavLogo.Render("ML") + m.styles.FooterText.Render(" Playground")
	links := make([]string, 0, len(navLinks))
	for _, link := range navLinks {
		links = append(links, m.styles.NavLink.Render(link))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Join(links, ""))
}

func (m Model) renderHero() string {
	parts := []string{""}
	if m.hero.Subtitle != "" {
		parts = append(parts, m.styles.Subtitle.Render(m.hero.Subtitle))
	}
	parts = append(parts, m.title.View(), "", m.styles.Button.Render("Go to Playground →"), "")
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderFeatures() string {
	n := len(m.hero.Features)
	if n == 0 {
		return ""
	}

	available := m.width - pageInset
	side := available >= n*minCardWidth+(n-1)*cardGap
	width := ui.CardWidth(available, n, cardGap, minCardWidth)
	if !side {
		width = max(available, minCardWidth)
	}

	cards := make([]string, 0, 2*n-1)
	for i, text := range m.hero.Features {
		if i > 0 && side {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		// Width includes padding but not the border.
		cards = append(cards, m.styles.Card.Width(width-2).Render(text))
	}

	if side {
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderFooter() string {
	models := []string{m.styles.FooterHeading.Render("ML Models")}
	for _, name := range mlModels {
		models = append(models, m.styles.FooterText.Render("• "+name))
	}

	middle := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.FooterMuted.Render("Made with love and joy"),
		m.renderToggle(),
		m.styles.Badge.Render(m.state.Phase()),
	)

	contact := make([]string, 0, len(contacts))
	for _, c := range contacts {
		contact = append(contact, m.styles.FooterText.Render(c))
	}

	gap := strings.Repeat(" ", 4)
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, models...),
		gap,
		middle,
		gap,
		lipgloss.JoinVertical(lipgloss.Left, contact...),
	)

	return lipgloss.JoinVertical(lipgloss.Left, "", columns, "", m.footer.View())
}

// renderToggle labels the button with the mode it switches to.
func (m Model) renderToggle() string {
	label := "☾ Dark"
	if m.state.Mode == theme.Dark {
		label = "☀ Light"
	}

	buttons := []string{m.styles.Toggle.Render(label)}
	if m.state.Override {
		buttons = append(buttons, " ", m.styles.ToggleActive.Render("Use System"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}
