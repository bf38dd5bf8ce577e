package tui

import (
	"context"
	"time"

	"github.com/smarttransit/transitdash/internal/apiclient"

	tea "github.com/charmbracelet/bubbletea"
)

const healthTimeout = 5 * time.Second

// HealthChecker reports API connectivity. *apiclient.Client satisfies it.
type HealthChecker interface {
	HealthCheck(ctx context.Context) apiclient.Health
}

type healthMsg apiclient.Health

type healthTickMsg time.Time

// healthCmd runs one check off the UI goroutine. It never touches
// navigation state; the result comes back as a healthMsg.
func (a *App) healthCmd() tea.Cmd {
	checker := a.health
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
		defer cancel()
		return healthMsg(checker.HealthCheck(ctx))
	}
}

func (a *App) applyHealth(h apiclient.Health) tea.Cmd {
	wasOK := a.lastHealth.OK()
	a.lastHealth = h
	switch {
	case !h.OK():
		a.log.WithField("error", h.Error).Warn("api health check failed")
	case !wasOK:
		a.log.WithField("uptime", h.Uptime).Info("api reachable")
	}

	if a.healthInterval <= 0 {
		return nil
	}
	return tea.Tick(a.healthInterval, func(t time.Time) tea.Msg {
		return healthTickMsg(t)
	})
}
