package tui

import (
	"fmt"
	"strconv"

	"github.com/smarttransit/transitdash/internal/model"
	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

// renderOperatorContent picks the content renderer for an operator page.
// Values outside the declared pages render the overview.
func renderOperatorContent(ctx ViewContext, page nav.OperatorPage) string {
	switch page {
	case nav.PageOverview:
		return renderOverview(ctx)
	case nav.PageRLRecommendations:
		return renderRecommendations(ctx)
	case nav.PageDemandForecast:
		return renderDemandForecast(ctx)
	case nav.PageEmotionSafety:
		return renderEmotionSafety(ctx)
	case nav.PageDriverBehavior:
		return renderDriverBehavior(ctx)
	case nav.PageMaintenance:
		return renderMaintenance(ctx)
	case nav.PageFraud:
		return renderFraud(ctx)
	case nav.PageSustainability:
		return renderSustainability(ctx)
	default:
		return renderOverview(ctx)
	}
}

func renderOverview(ctx ViewContext) string {
	d := ctx.Data.Overview
	w := ctx.ContentWidth
	chartHeight := max(4, min(8, ctx.ContentHeight-30))

	// Two columns when there is room, stacked otherwise.
	leftWidth := w
	if w >= 90 {
		leftWidth = w - max(40, w*2/5) - 2
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		chartTitleStyle.Render("Hourly ridership"),
		renderSeriesChart(d.Ridership, leftWidth, chartHeight, ColorBlue),
		"",
		renderFleetBoard(d.Fleet, leftWidth),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderSystemHealth(d),
		"",
		renderIncidents(d.Incidents),
	)
	var grid string
	if leftWidth == w {
		grid = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.PageOverview.Title(), "real-time fleet monitoring"),
		renderKPICards(d.KPIs, w),
		grid,
		renderInsight(d.Insight, w),
	)
}

func renderFleetBoard(fleet []model.FleetBus, width int) string {
	barWidth := max(8, min(20, width/5))
	alerts := 0
	rows := make([][]string, 0, len(fleet))
	for _, b := range fleet {
		flag := ""
		if b.Alert {
			alerts++
			flag = lipgloss.NewStyle().Foreground(ColorRed).Bold(true).Render("⚠ alert")
		}
		rows = append(rows, []string{
			b.ID,
			"Route " + b.Route,
			badge(b.Crowd, crowdColor(b.Crowd)),
			gauge(float64(b.Occupancy), 100, barWidth, crowdColor(b.Crowd)) + fmt.Sprintf(" %3d%%", b.Occupancy),
			flag,
		})
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		chartTitleStyle.Render("Fleet board")+"  "+
			mutedStyle.Render(fmt.Sprintf("%d active buses, %d with alerts", len(fleet), alerts)),
		renderTable([]string{"Bus", "Route", "Crowd", "Occupancy", ""}, rows),
	)
}

func serviceColor(s model.ServiceStatus) lipgloss.Color {
	switch s {
	case model.ServiceOnline:
		return ColorGreen
	case model.ServiceWarning:
		return ColorAmber
	case model.ServiceError:
		return ColorRed
	default:
		return ColorGray
	}
}

func renderSystemHealth(d model.Overview) string {
	healthy := d.HealthyServices()
	pct := 0
	if len(d.Services) > 0 {
		pct = healthy * 100 / len(d.Services)
	}

	rows := make([][]string, 0, len(d.Services))
	for _, svc := range d.Services {
		rows = append(rows, []string{
			lipgloss.NewStyle().Foreground(serviceColor(svc.Status)).Render("●") + " " + svc.Name,
			mutedStyle.Render(svc.Uptime),
			svc.Latency,
		})
	}

	summary := fmt.Sprintf("%d services operational", healthy)
	if attention := len(d.Services) - healthy; attention > 0 {
		summary += lipgloss.NewStyle().Foreground(ColorAmber).Render(fmt.Sprintf(", %d requiring attention", attention))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		chartTitleStyle.Render("System health")+"  "+
			lipgloss.NewStyle().Foreground(healthColor(pct)).Bold(true).Render(fmt.Sprintf("%d%%", pct)),
		renderTable([]string{"Service", "Uptime", "Latency"}, rows),
		mutedStyle.Render(summary),
	)
}

func renderIncidents(incidents []model.Incident) string {
	lines := []string{
		chartTitleStyle.Render("Live alerts") + "  " + badge(fmt.Sprintf("%d active", len(incidents)), ColorRed),
	}
	for _, in := range incidents {
		lines = append(lines,
			badge(string(in.Severity), severityColor(in.Severity))+" "+in.Title,
			"  "+mutedStyle.Render(in.Time+" | "+in.Kind+": "+in.Detail),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRecommendations(ctx ViewContext) string {
	recs := ctx.Data.Recommendations
	w := ctx.ContentWidth
	barWidth := max(10, min(30, w/4))

	lines := make([]string, 0, len(recs)*3)
	for i, r := range recs {
		conf := fmt.Sprintf("%3.0f%%", r.Confidence*100)
		lines = append(lines,
			headingStyle.Render(fmt.Sprintf("%d. %s", i+1, r.Title)),
			"   "+gauge(r.Confidence, 1, barWidth, ColorBlue)+" "+conf+"  "+
				lipgloss.NewStyle().Foreground(ColorGreen).Render(r.Impact),
			"   "+mutedStyle.Render(r.Detail),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.PageRLRecommendations.Title(), "ranked by policy confidence"),
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		renderInsight("Recommendations are produced by the dispatch policy and are advisory only.", w),
	)
}

func renderDemandForecast(ctx ViewContext) string {
	d := ctx.Data.DemandForecast
	w := ctx.ContentWidth
	chartHeight := max(4, min(12, ctx.ContentHeight-10))

	predicted := make([]float64, 0, len(d.Points))
	for _, p := range d.Points {
		predicted = append(predicted, p.Predicted)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.PageDemandForecast.Title(), d.Horizon),
		renderForecastChart(d.Points, w, chartHeight),
		chartTitleStyle.Render("Predicted trend"),
		renderSparkline(predicted, min(w, 3*len(predicted)), 2, ColorBlue),
		renderInsight(d.Insight, w),
	)
}

func renderEmotionSafety(ctx ViewContext) string {
	d := ctx.Data.EmotionSafety
	w := ctx.ContentWidth

	sentiment := make([]string, 0, len(d.Sentiment))
	for _, s := range d.Sentiment {
		sentiment = append(sentiment, fmt.Sprintf("%-9s %s %3.0f%%",
			s.Label, gauge(s.Value, 100, 20, ColorBlue), s.Value))
	}

	rows := make([][]string, 0, len(d.Alerts))
	for _, a := range d.Alerts {
		rows = append(rows, []string{
			badge(string(a.Severity), severityColor(a.Severity)),
			a.Vehicle,
			"Route " + a.Route,
			a.Message,
		})
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.PageEmotionSafety.Title(), "onboard sentiment"),
		lipgloss.JoinVertical(lipgloss.Left, sentiment...),
		"",
		renderTable([]string{"Severity", "Vehicle", "Route", "Alert"}, rows),
		renderInsight(d.Insight, w),
	)
}

func renderDriverBehavior(ctx ViewContext) string {
	d := ctx.Data.DriverBehavior
	rows := make([][]string, 0, len(d.Drivers))
	for _, dr := range d.Drivers {
		rows = append(rows, []string{
			dr.Name,
			gauge(float64(dr.Score), 100, 15, healthColor(dr.Score)) + " " + strconv.Itoa(dr.Score),
			strconv.Itoa(dr.HarshBraking),
			strconv.Itoa(dr.Speeding),
			fmt.Sprintf("%d min", dr.IdleMinutes),
		})
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.PageDriverBehavior.Title(), "safety score, last 7 days"),
		renderTable([]string{"Driver", "Score", "Harsh braking", "Speeding", "Idle"}, rows),
		renderInsight(d.Insight, ctx.ContentWidth),
	)
}

func renderMaintenance(ctx ViewContext) string {
	d := ctx.Data.Maintenance
	rows := make([][]string, 0, len(d.Items))
	for _, it := range d.Items {
		rows = append(rows, []string{
			it.Vehicle,
			it.Component,
			gauge(float64(it.Health), 100, 20, healthColor(it.Health)) + fmt.Sprintf(" %3d%%", it.Health),
			fmt.Sprintf("in %d days", it.DueInDays),
		})
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.PageMaintenance.Title(), "predicted component health"),
		renderTable([]string{"Vehicle", "Component", "Health", "Service"}, rows),
		renderInsight(d.Insight, ctx.ContentWidth),
	)
}

func renderFraud(ctx ViewContext) string {
	d := ctx.Data.Fraud
	rows := make([][]string, 0, len(d.Cases))
	for _, c := range d.Cases {
		rows = append(rows, []string{
			c.ID,
			c.Kind,
			"Route " + c.Route,
			fmt.Sprintf("$%.2f", c.Amount),
			lipgloss.NewStyle().Foreground(riskColor(c.Risk)).Render(strconv.Itoa(c.Risk)),
			badge(string(c.Level), severityColor(c.Level)),
		})
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.PageFraud.Title(), "flagged fare activity"),
		renderTable([]string{"Case", "Pattern", "Route", "Amount", "Risk", "Level"}, rows),
		renderInsight(d.Insight, ctx.ContentWidth),
	)
}

func renderSustainability(ctx ViewContext) string {
	d := ctx.Data.Sustainability
	w := ctx.ContentWidth
	chartHeight := max(4, min(8, ctx.ContentHeight-12))
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeading(nav.PageSustainability.Title(), "emissions this week"),
		renderKPICards(d.KPIs, w),
		chartTitleStyle.Render("CO2 saved per day (t)"),
		renderSeriesChart(d.CO2Savings, w, chartHeight, ColorGreen),
		renderInsight(d.Insight, w),
	)
}
