package tui

import (
	"fmt"
	"strings"

	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

const brandText = " SmartTransit "

type tabSpan struct {
	role       nav.Role
	label      string
	start, end int // [start, end) columns
}

// roleTabs lays out the role bar. Rendering and mouse hit-testing both use it
// so the clickable columns always match what is drawn.
func roleTabs() []tabSpan {
	roles := nav.Roles()
	spans := make([]tabSpan, 0, len(roles))
	x := lipgloss.Width(brandText) + 1
	for i, r := range roles {
		label := fmt.Sprintf(" %d %s ", i+1, r.Title())
		w := lipgloss.Width(label)
		spans = append(spans, tabSpan{role: r, label: label, start: x, end: x + w})
		x += w + 1
	}
	return spans
}

func (a *App) renderRoleBar(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorGreen).
		Bold(true).
		Render(brandText))
	b.WriteString(tabStyle.Render(" "))

	active := a.nav.State().Role
	for i, span := range roleTabs() {
		if i > 0 {
			b.WriteString(tabStyle.Render(" "))
		}
		if span.role == active {
			b.WriteString(activeTabStyle.Render(span.label))
		} else {
			b.WriteString(tabStyle.Render(span.label))
		}
	}

	line := b.String()
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += tabStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}

// roleTabAt returns the role whose tab covers column x.
func roleTabAt(x int) (nav.Role, bool) {
	for _, span := range roleTabs() {
		if x >= span.start && x < span.end {
			return span.role, true
		}
	}
	return nav.RoleOperator, false
}
