package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders the key reference in a centered box using the
// help viewport for scrolling.
func (a *App) renderHelpOverlay(width, height int) string {
	modalWidth := min(width-8, 76)
	modalHeight := height - 2

	contentWidth := modalWidth - 4
	contentHeight := max(1, modalHeight-4)

	a.helpViewport.Width = contentWidth
	a.helpViewport.Height = contentHeight
	a.helpViewport.SetContent(a.renderHelpContent())

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Render(a.helpViewport.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render("Help")

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("↑/↓/Wheel: Scroll | ?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

func (a *App) renderHelpContent() string {
	intro := `SmartTransit dashboard

ROLES:
  Click a tab in the top bar or press 1/2/3 to switch role.
  Switching to Passenger always opens the home screen.

OPERATOR:
  Click a page in the sidebar or move with ↑/↓.
  The last page you visited is kept while you look at other roles.

PASSENGER:
  Click anywhere on the home screen to track your bus live.
  Click "‹ Back" or press esc to return home.

KEYS:
`
	full := a.help
	full.Width = a.helpViewport.Width
	return intro + full.FullHelpView(a.keys.FullHelp())
}
