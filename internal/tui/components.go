package tui

import (
	"fmt"
	"strings"

	"github.com/smarttransit/transitdash/internal/model"
	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

// pageHeading renders the title line every content renderer starts with.
func pageHeading(title, subtitle string) string {
	h := headingStyle.Render(title)
	if subtitle != "" {
		h += "  " + mutedStyle.Render(subtitle)
	}
	return h
}

func trendArrow(t model.Trend) string {
	switch t {
	case model.TrendUp:
		return lipgloss.NewStyle().Foreground(ColorGreen).Render("▲")
	case model.TrendDown:
		return lipgloss.NewStyle().Foreground(ColorAmber).Render("▼")
	default:
		return mutedStyle.Render("■")
	}
}

// renderKPICards lays out KPI cards in a single row, shrinking them to fit.
func renderKPICards(kpis []model.KPI, width int) string {
	if len(kpis) == 0 {
		return ""
	}
	// Card borders and padding take four columns; cards are one column apart.
	cardWidth := (width-(len(kpis)-1))/len(kpis) - 2
	cardWidth = max(cardWidth, 12)

	cards := make([]string, 0, len(kpis)*2)
	for i, k := range kpis {
		body := lipgloss.JoinVertical(lipgloss.Left,
			mutedStyle.Render(k.Label),
			headingStyle.Render(k.Value),
			trendArrow(k.Trend)+" "+k.Delta,
		)
		if i > 0 {
			cards = append(cards, " ")
		}
		cards = append(cards, sectionStyle.Width(cardWidth).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderInsight boxes the static "AI insight" attached to a page.
func renderInsight(text string, width int) string {
	if text == "" {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(ColorPurple).Bold(true).Render("✦ AI insight")
	return insightStyle.Width(max(20, width-2)).Render(label + "\n" + text)
}

// renderTable renders rows of pre-styled cells padded to the widest cell of
// each column. Widths are measured without ANSI sequences.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	pad := func(cell string, w int) string {
		if gap := w - lipgloss.Width(cell); gap > 0 {
			return cell + strings.Repeat(" ", gap)
		}
		return cell
	}

	lines := make([]string, 0, len(rows)+1)
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = pad(h, widths[i])
	}
	lines = append(lines, mutedStyle.Render(strings.Join(cells, "  ")))
	for _, row := range rows {
		cells := make([]string, len(header))
		for i := range header {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i])
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	return strings.Join(lines, "\n")
}

// renderStatusLine renders the location, key hints and API health at the
// bottom of the screen.
func (a *App) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	w := a.width
	narrow := w < 80

	leftText := fmt.Sprintf("[%s]", nav.Resolve(a.nav.State()).Path())

	var statusText string
	if a.showHelp {
		statusText = "esc/?: close help"
	} else if narrow {
		statusText = "?: Help • q: Quit"
	} else {
		a.help.Width = max(0, w/2)
		statusText = a.help.ShortHelpView(a.keys.ShortHelp())
	}

	var dot string
	switch {
	case a.health == nil:
		dot = ""
	case !a.lastHealth.CheckedAt.IsZero() && a.lastHealth.OK():
		dot = lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorGreen).Render("●") + baseStyle.Render(" API")
	case !a.lastHealth.CheckedAt.IsZero():
		dot = lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorRed).Render("●") + baseStyle.Render(" API")
	default:
		dot = renderPendingIndicator() + baseStyle.Render(" API")
	}

	left := baseStyle.Render(" " + leftText + " ")
	center := baseStyle.Render(statusText)
	right := dot
	if right != "" {
		right += baseStyle.Render(" ")
	}

	gap := w - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if gap < 1 {
		// Drop the hints before dropping the location or health.
		center = ""
		gap = max(0, w-lipgloss.Width(left)-lipgloss.Width(right))
	}
	leftGap := gap / 2
	return left +
		baseStyle.Render(strings.Repeat(" ", leftGap)) +
		center +
		baseStyle.Render(strings.Repeat(" ", gap-leftGap)) +
		right
}
