package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Design system colors - adaptive based on terminal background
var (
	ColorPrimary   lipgloss.Color
	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color
	ColorBorder    lipgloss.Color
)

// Shared styles
var (
	TitleStyle   lipgloss.Style
	StatusStyle  lipgloss.Style
	HelpStyle    lipgloss.Style
	SummaryStyle lipgloss.Style
)

func init() {
	applyTheme("")
}

// SetTheme overrides the adaptive color scheme. Known themes are "light" and
// "dark"; anything else keeps the terminal-detected scheme.
func SetTheme(theme string) {
	applyTheme(theme)
}

func applyTheme(theme string) {
	switch theme {
	case "light":
		setLightThemeColors()
	case "dark":
		setDarkThemeColors()
	default:
		if lipgloss.HasDarkBackground() {
			setDarkThemeColors()
		} else {
			setLightThemeColors()
		}
	}

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	SummaryStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
}

func setDarkThemeColors() {
	ColorPrimary = lipgloss.Color("205")
	ColorText = lipgloss.Color("252")
	ColorTextMuted = lipgloss.Color("243")
	ColorBorder = lipgloss.Color("238")
}

func setLightThemeColors() {
	ColorPrimary = lipgloss.Color("162")
	ColorText = lipgloss.Color("235")
	ColorTextMuted = lipgloss.Color("245")
	ColorBorder = lipgloss.Color("250")
}
