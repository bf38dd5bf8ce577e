package tui

import (
	"fmt"

	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

func renderDriver(ctx ViewContext) string {
	d := ctx.Data.Driver
	w := ctx.ContentWidth

	stops := make([]string, 0, len(d.NextStops))
	for _, s := range d.NextStops {
		stops = append(stops, fmt.Sprintf("%s  %s", mutedStyle.Render(s.Arrival), s.Name))
	}

	alerts := make([]string, 0, len(d.Alerts))
	for _, a := range d.Alerts {
		alerts = append(alerts, lipgloss.NewStyle().Foreground(ColorAmber).Render("! ")+a)
	}

	summary := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Route %s   Shift %s", d.Route, d.Shift),
		"Safety score "+gauge(float64(d.Score), 100, 20, healthColor(d.Score))+fmt.Sprintf(" %d", d.Score),
		fmt.Sprintf("Earnings today $%.2f", d.Earnings),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.RoleDriver.Title()+" · "+d.Name, "current shift"),
		sectionStyle.Width(max(20, w-4)).Render(summary),
		chartTitleStyle.Render("Next stops"),
		lipgloss.JoinVertical(lipgloss.Left, stops...),
		chartTitleStyle.Render("Alerts"),
		lipgloss.JoinVertical(lipgloss.Left, alerts...),
		renderInsight(d.Insight, w),
	)
}
