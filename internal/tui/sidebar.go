package tui

import (
	"fmt"

	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 24

// sidebarHeaderLines is the number of lines above the first page entry.
const sidebarHeaderLines = 2

func (a *App) clampSidebarCursor() {
	pages := nav.OperatorPages()
	if a.sidebarCursor < 0 {
		a.sidebarCursor = 0
	}
	if a.sidebarCursor >= len(pages) {
		a.sidebarCursor = len(pages) - 1
	}
}

// syncSidebarCursor points the cursor at the stored operator page, which is
// kept even while another role is active.
func (a *App) syncSidebarCursor() {
	page := a.nav.State().OperatorPage
	if !page.Valid() {
		page = nav.PageOverview
	}
	for i, p := range nav.OperatorPages() {
		if p == page {
			a.sidebarCursor = i
			return
		}
	}
}

func (a *App) moveSidebarCursor(delta int) {
	if delta > 0 {
		a.nav.NextOperatorPage()
	} else {
		a.nav.PrevOperatorPage()
	}
}

func (a *App) activateSidebarCursor() {
	a.clampSidebarCursor()
	a.nav.SelectOperatorPage(nav.OperatorPages()[a.sidebarCursor])
}

func (a *App) buildSidebarLines(active nav.OperatorPage) ([]string, map[int]nav.OperatorPage) {
	pages := nav.OperatorPages()
	rowToPage := make(map[int]nav.OperatorPage, len(pages))
	lines := make([]string, 0, len(pages)+sidebarHeaderLines)

	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Analytics"))
	lines = append(lines, "")

	maxLabelWidth := sidebarWidth - 4
	for _, p := range pages {
		label := fmt.Sprintf("  %s", p.Title())
		if p == active {
			label = fmt.Sprintf("> %s", p.Title())
		}
		if len(label) > maxLabelWidth && maxLabelWidth > 3 {
			label = label[:maxLabelWidth-1] + "~"
		}
		rowToPage[len(lines)] = p
		if p == active {
			label = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).Render(label)
		}
		lines = append(lines, label)
	}
	return lines, rowToPage
}

// sidebarPageAtRow maps a row inside the sidebar box (0 is the top border)
// to the page drawn there.
func (a *App) sidebarPageAtRow(row int) (nav.OperatorPage, bool) {
	_, rowToPage := a.buildSidebarLines(nav.PageOverview)
	p, ok := rowToPage[row-1]
	return p, ok
}

// renderSidebar renders the operator page list. The highlighted entry is
// always the stored operator page.
func (a *App) renderSidebar(height int) string {
	style := activeSectionStyle.
		Width(sidebarWidth - 2).
		Height(max(1, height-2))

	lines, _ := a.buildSidebarLines(nav.Resolve(a.nav.State()).OperatorPage)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
