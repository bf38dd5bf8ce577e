package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderPendingIndicator is shown until the first health check returns.
// The frame is selected from the current time; SpinnerTickMsg drives the
// re-renders.
func renderPendingIndicator() string {
	frame := spinnerFrames[time.Now().UnixMilli()/int64(spinnerInterval/time.Millisecond)%int64(len(spinnerFrames))]
	return lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorAmber).
		Render(frame)
}

// SpinnerTickMsg triggers a re-render for the pending health indicator.
type SpinnerTickMsg struct{}

// healthPending is true from start-up until the first check has landed.
func (a *App) healthPending() bool {
	return a.health != nil && a.lastHealth.CheckedAt.IsZero()
}

// handleSpinnerTick re-schedules spinner ticks while the first check is in
// flight.
func (a *App) handleSpinnerTick() (tea.Model, tea.Cmd) {
	return a, a.startSpinnerIfNeeded()
}

// startSpinnerIfNeeded schedules a spinner tick if a check is pending.
func (a *App) startSpinnerIfNeeded() tea.Cmd {
	if !a.healthPending() {
		return nil
	}
	return tea.Tick(spinnerInterval, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}
