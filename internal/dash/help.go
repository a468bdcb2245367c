package dash

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// newHelp returns a help model that always shows the full binding list.
func newHelp() help.Model {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpDescStyle
	return h
}

// renderHelpOverlay renders a centered help box over the whole viewport.
func (m Model) renderHelpOverlay() string {
	lines := []string{
		helpTitleStyle.Render("Keyboard Shortcuts"),
		m.help.View(keys),
		"",
		LabelStyle.Render("Press ? to close"),
	}
	box := helpBoxStyle.Render(strings.Join(lines, "\n"))

	return lipgloss.Place(
		m.viewport.Width,
		m.viewport.Height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
