package dash

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink
)

// Panel styles, one per cell role
var (
	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// Border glyphs, taken from lipgloss so panels match the rest of the UI.
var panelBorder = lipgloss.RoundedBorder()
