package tui

import (
	"fmt"
	"strings"

	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

const backControlLabel = " ‹ Back "

func crowdColor(level string) lipgloss.Color {
	switch strings.ToLower(level) {
	case "critical":
		return ColorPurple
	case "high":
		return ColorRed
	case "moderate", "medium":
		return ColorAmber
	default:
		return ColorGreen
	}
}

func renderPassengerHome(ctx ViewContext) string {
	p := ctx.Data.Passenger
	w := ctx.ContentWidth

	cards := make([]string, 0, len(p.Routes))
	for _, r := range p.Routes {
		body := lipgloss.JoinVertical(lipgloss.Left,
			headingStyle.Render(fmt.Sprintf("Route %s → %s", r.Route, r.Destination)),
			fmt.Sprintf("Arrives in %d min   $%.2f", r.ETAMinutes, r.Fare),
			"Crowd "+badge(r.Crowd, crowdColor(r.Crowd)),
		)
		cards = append(cards, sectionStyle.Width(max(20, w-4)).Render(body))
	}

	trip := p.Trip
	live := activeSectionStyle.Width(max(20, w-4)).Render(lipgloss.JoinVertical(lipgloss.Left,
		chartTitleStyle.Render("Your bus is on the way"),
		fmt.Sprintf("Route %s · %s · %d min away", trip.Route, trip.Vehicle, trip.ETAMinutes),
		mutedStyle.Render("Click anywhere or press enter to track live"),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(p.Greeting, nav.ScreenHome.Title()),
		live,
		chartTitleStyle.Render("Suggested routes"),
		lipgloss.JoinVertical(lipgloss.Left, cards...),
		renderInsight(p.Insight, w),
	)
}

func renderPassengerTracking(ctx ViewContext) string {
	trip := ctx.Data.Passenger.Trip
	w := ctx.ContentWidth

	stops := make([]string, 0, len(trip.Stops))
	for i, s := range trip.Stops {
		var marker string
		switch {
		case i < trip.CurrentStop:
			marker = mutedStyle.Render("○")
		case i == trip.CurrentStop:
			marker = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true).Render("●")
		default:
			marker = lipgloss.NewStyle().Foreground(ColorBlue).Render("○")
		}
		line := fmt.Sprintf("%s %s  %s", marker, s.Arrival, s.Name)
		if i == trip.CurrentStop {
			line += "  " + badge("bus here", ColorGreen)
		}
		stops = append(stops, line)
		if i < len(trip.Stops)-1 {
			stops = append(stops, mutedStyle.Render("│"))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.ScreenTracking.Title(), fmt.Sprintf("Route %s · %s", trip.Route, trip.Vehicle)),
		fmt.Sprintf("Arriving in %d min", trip.ETAMinutes),
		"Occupancy "+gauge(float64(trip.Occupancy), 100, 20, riskColor(trip.Occupancy))+fmt.Sprintf(" %d%%", trip.Occupancy),
		"",
		lipgloss.JoinVertical(lipgloss.Left, stops...),
		"",
		renderInsight(ctx.Data.Passenger.Insight, w),
	)
}

// renderBackControl is the overlay drawn in the top-left of the tracking
// screen. It is the only way back to the passenger home screen.
func renderBackControl() string {
	return backControlStyle.Render(backControlLabel)
}

func backControlWidth() int {
	return lipgloss.Width(backControlLabel)
}
