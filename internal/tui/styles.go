package tui

import (
	"github.com/smarttransit/transitdash/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Palette shared by every renderer.
var (
	ColorBlue   = lipgloss.Color("39")
	ColorGray   = lipgloss.Color("8")
	ColorNavy   = lipgloss.Color("17")
	ColorWhite  = lipgloss.Color("15")
	ColorGreen  = lipgloss.Color("#44FF44")
	ColorAmber  = lipgloss.Color("#FFAA00")
	ColorRed    = lipgloss.Color("#FF4444")
	ColorPurple = lipgloss.Color("201")
)

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	activeSectionStyle = sectionStyle.
				BorderForeground(ColorBlue)

	chartTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	insightStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorNavy)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(ColorNavy).
			Background(ColorBlue).
			Bold(true)

	backControlStyle = lipgloss.NewStyle().
				Foreground(ColorNavy).
				Background(ColorAmber).
				Bold(true)
)

// severityColor maps alert severity onto the badge palette.
func severityColor(s model.Severity) lipgloss.Color {
	switch s {
	case model.SeverityCritical:
		return ColorPurple
	case model.SeverityHigh:
		return ColorRed
	case model.SeverityMedium:
		return ColorAmber
	default:
		return ColorGreen
	}
}

// healthColor grades a 0..100 value where higher is better.
func healthColor(v int) lipgloss.Color {
	switch {
	case v < 30:
		return ColorRed
	case v < 60:
		return ColorAmber
	default:
		return ColorGreen
	}
}

// riskColor grades a 0..100 value where higher is worse.
func riskColor(v int) lipgloss.Color {
	return healthColor(100 - v)
}

func badge(text string, c lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(ColorNavy).
		Background(c).
		Bold(true).
		Padding(0, 1).
		Render(text)
}
