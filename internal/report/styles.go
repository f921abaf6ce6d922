package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)

	CategoryStyle = lipgloss.NewStyle().Foreground(colorMuted)

	NameStyle = lipgloss.NewStyle()

	ChangedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	AdvisoryStyle = lipgloss.NewStyle().Foreground(colorAccent)

	ErrorStyle = lipgloss.NewStyle().Foreground(colorError)

	OKStyle = lipgloss.NewStyle().Foreground(colorSecondary)
)

// RenderTitle renders a section title
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}
