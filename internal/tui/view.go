package tui

import (
	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

const (
	roleBarHeight    = 1
	statusLineHeight = 1
	minWidth         = 60
	minHeight        = 20
)

// bodyHeight is the height between the role bar and the status line.
func (a *App) bodyHeight() int {
	return max(0, a.height-roleBarHeight-statusLineHeight)
}

// tooSmall reports whether the window only shows the resize notice.
func (a *App) tooSmall() bool {
	return a.width < minWidth || a.height < minHeight
}

// View renders the dashboard.
func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Initializing dashboard..."
	}
	if a.tooSmall() {
		return "Terminal too small. Resize to at least 60x20."
	}

	var body string
	if a.showHelp {
		body = a.renderHelpOverlay(a.width, a.bodyHeight())
	} else {
		body = a.renderBody(nav.Resolve(a.nav.State()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderRoleBar(a.width),
		body,
		a.renderStatusLine(),
	)
}

// renderBody draws the screen chosen by the render dispatch.
func (a *App) renderBody(screen nav.Screen) string {
	h := a.bodyHeight()

	switch screen.Role {
	case nav.RolePassenger:
		if screen.BackControl {
			ctx := a.viewContext(a.width, h-1)
			return lipgloss.JoinVertical(lipgloss.Left,
				renderBackControl(),
				a.fit(renderPassengerTracking(ctx), a.width, h-1),
			)
		}
		return a.fit(renderPassengerHome(a.viewContext(a.width, h)), a.width, h)

	case nav.RoleDriver:
		return a.fit(renderDriver(a.viewContext(a.width, h)), a.width, h)

	default:
		contentWidth := a.width - sidebarWidth - 1
		ctx := a.viewContext(contentWidth, h)
		content := a.fit(renderOperatorContent(ctx, screen.OperatorPage), contentWidth, h)
		return lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(h), " ", content)
	}
}

// viewContext sizes a renderer's box. One column on each side is padding.
func (a *App) viewContext(width, height int) ViewContext {
	return ViewContext{
		Data:          a.data,
		ContentWidth:  max(1, width-2),
		ContentHeight: height,
	}
}

// fit pads content into a width x height box and clips any overflow.
func (a *App) fit(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Padding(0, 1).
		Render(content)
}
