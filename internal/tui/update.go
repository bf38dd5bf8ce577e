package tui

import (
	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress processes keyboard input.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	// The help overlay swallows everything except its own close keys.
	if a.showHelp {
		switch {
		case key.Matches(msg, a.keys.Help), key.Matches(msg, a.keys.Back):
			a.showHelp = false
		case key.Matches(msg, a.keys.Up):
			a.helpViewport.ScrollUp(1)
		case key.Matches(msg, a.keys.Down):
			a.helpViewport.ScrollDown(1)
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		a.helpViewport.GotoTop()
		return a, nil
	case key.Matches(msg, a.keys.Operator):
		a.nav.SelectRole(nav.RoleOperator)
		return a, nil
	case key.Matches(msg, a.keys.Passenger):
		a.nav.SelectRole(nav.RolePassenger)
		return a, nil
	case key.Matches(msg, a.keys.Driver):
		a.nav.SelectRole(nav.RoleDriver)
		return a, nil
	case key.Matches(msg, a.keys.NextRole):
		a.nav.NextRole()
		return a, nil
	case key.Matches(msg, a.keys.PrevRole):
		a.nav.PrevRole()
		return a, nil
	}

	screen := nav.Resolve(a.nav.State())
	switch screen.Role {
	case nav.RoleOperator:
		switch {
		case key.Matches(msg, a.keys.Up):
			a.moveSidebarCursor(-1)
		case key.Matches(msg, a.keys.Down):
			a.moveSidebarCursor(1)
		case key.Matches(msg, a.keys.Enter):
			a.activateSidebarCursor()
		}
	case nav.RolePassenger:
		switch {
		case screen.PassengerScreen == nav.ScreenHome && key.Matches(msg, a.keys.OpenTracking):
			a.applyIntent(HitResult{Intent: IntentOpenTracking})
		case screen.BackControl && key.Matches(msg, a.keys.Back):
			a.applyIntent(HitResult{Intent: IntentBack})
		}
	}
	return a, nil
}

// handleMouseEvent processes mouse interactions. Clicks are hit-tested into
// an intent first; only applyIntent talks to the controller.
func (a *App) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || a.tooSmall() {
		return a, nil
	}

	if a.showHelp {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.helpViewport.ScrollUp(1)
		case tea.MouseButtonWheelDown:
			a.helpViewport.ScrollDown(1)
		}
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		a.applyIntent(a.hitTest(msg.X, msg.Y))
	case tea.MouseButtonWheelUp:
		if nav.Resolve(a.nav.State()).Sidebar && msg.X < sidebarWidth {
			a.moveSidebarCursor(-1)
		}
	case tea.MouseButtonWheelDown:
		if nav.Resolve(a.nav.State()).Sidebar && msg.X < sidebarWidth {
			a.moveSidebarCursor(1)
		}
	}
	return a, nil
}

// hitTest maps a screen position to the intent of whatever is drawn there.
func (a *App) hitTest(x, y int) HitResult {
	if x < 0 || y < 0 || y >= a.height {
		return HitResult{}
	}
	// Nothing is drawn but the resize notice.
	if a.tooSmall() {
		return HitResult{}
	}
	if y < roleBarHeight {
		if r, ok := roleTabAt(x); ok {
			return HitResult{Intent: IntentSelectRole, Role: r}
		}
		return HitResult{}
	}
	if y >= a.height-statusLineHeight {
		return HitResult{}
	}

	row := y - roleBarHeight
	screen := nav.Resolve(a.nav.State())
	switch screen.Role {
	case nav.RoleOperator:
		if x < sidebarWidth {
			if p, ok := a.sidebarPageAtRow(row); ok {
				return HitResult{Intent: IntentSelectPage, Page: p}
			}
		}
	case nav.RolePassenger:
		if screen.BackControl {
			if row == 0 && x < backControlWidth() {
				return HitResult{Intent: IntentBack}
			}
			return HitResult{}
		}
		// The whole home surface opens tracking.
		return HitResult{Intent: IntentOpenTracking}
	}
	return HitResult{}
}

// applyIntent performs the controller operation an intent asks for.
func (a *App) applyIntent(hit HitResult) {
	switch hit.Intent {
	case IntentSelectRole:
		a.nav.SelectRole(hit.Role)
	case IntentSelectPage:
		a.nav.SelectOperatorPage(hit.Page)
	case IntentOpenTracking:
		a.nav.SelectPassengerScreen(nav.ScreenTracking)
	case IntentBack:
		a.nav.SelectPassengerScreen(nav.ScreenHome)
	}
}
