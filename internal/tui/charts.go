package tui

import (
	"fmt"
	"strings"

	"github.com/smarttransit/transitdash/internal/model"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
)

const maxBarWidth = 5

func solid(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Background(c)
}

// barLayout picks a bar width that fits n bars (plus gaps) into width.
func barLayout(n, width int) int {
	if n <= 0 {
		return 1
	}
	w := (width - (n - 1)) / n
	if w < 1 {
		return 1
	}
	return min(w, maxBarWidth)
}

// renderSeriesChart draws one bar per point with a label row underneath.
func renderSeriesChart(points []model.SeriesPoint, width, height int, color lipgloss.Color) string {
	if len(points) == 0 || width < 4 || height < 3 {
		return mutedStyle.Render("no data")
	}

	barWidth := barLayout(len(points), width)
	chartWidth := len(points)*barWidth + len(points) - 1
	bc := barchart.New(chartWidth, height-1,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)

	style := solid(color)
	labels := make([]string, 0, len(points))
	for _, p := range points {
		bc.Push(barchart.BarData{
			Label:  p.Label,
			Values: []barchart.BarValue{{Name: p.Label, Value: p.Value, Style: style}},
		})
		labels = append(labels, fitLabel(p.Label, barWidth))
	}
	bc.Draw()

	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), mutedStyle.Render(strings.Join(labels, " ")))
}

// renderForecastChart draws actual and predicted demand as paired bars.
// Slots without an observation only show the prediction.
func renderForecastChart(points []model.ForecastPoint, width, height int) string {
	if len(points) == 0 || width < 8 || height < 3 {
		return mutedStyle.Render("no data")
	}

	// Each slot is two bars; slots are separated by one empty bar.
	barWidth := max(1, min(maxBarWidth, width/(3*len(points))))
	slotWidth := 2 * barWidth
	chartWidth := len(points)*slotWidth + (len(points)-1)*barWidth
	bc := barchart.New(chartWidth, height-1,
		barchart.WithBarGap(0),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)

	actual := solid(ColorBlue)
	predicted := solid(ColorGray)
	labels := make([]string, 0, len(points))
	for i, p := range points {
		if i > 0 {
			bc.Push(barchart.BarData{Values: []barchart.BarValue{{Name: "gap", Value: 0, Style: predicted}}})
		}
		bc.Push(barchart.BarData{Label: p.Label, Values: []barchart.BarValue{{Name: "actual", Value: p.Actual, Style: actual}}})
		bc.Push(barchart.BarData{Label: p.Label, Values: []barchart.BarValue{{Name: "predicted", Value: p.Predicted, Style: predicted}}})
		labels = append(labels, fitLabel(p.Label, slotWidth))
	}
	bc.Draw()

	legend := lipgloss.NewStyle().Foreground(ColorBlue).Render("■ actual") + "  " +
		mutedStyle.Render("■ predicted")
	labelRow := strings.Join(labels, strings.Repeat(" ", barWidth))
	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), mutedStyle.Render(labelRow), legend)
}

// renderSparkline draws a compact trend line of values.
func renderSparkline(values []float64, width, height int, color lipgloss.Color) string {
	if len(values) == 0 || width < 2 || height < 1 {
		return ""
	}
	sl := sparkline.New(width, height, sparkline.WithStyle(lipgloss.NewStyle().Foreground(color)))
	sl.PushAll(values)
	sl.Draw()
	return sl.View()
}

// gauge renders value/limit as a horizontal bar of the given width.
func gauge(value, limit float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if limit <= 0 {
		limit = 1
	}
	frac := value / limit
	frac = max(0, min(1, frac))
	filled := int(frac*float64(width) + 0.5)
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}

func fitLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(label)
	if len(r) > width {
		r = r[:width]
	}
	return fmt.Sprintf("%-*s", width, string(r))
}
