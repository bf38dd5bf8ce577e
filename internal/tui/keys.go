package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding

	// Roles
	Operator  key.Binding
	Passenger key.Binding
	Driver    key.Binding
	NextRole  key.Binding
	PrevRole  key.Binding

	// Operator sidebar
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding

	// Passenger
	OpenTracking key.Binding
	Back         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Operator: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "operator"),
		),
		Passenger: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "passenger"),
		),
		Driver: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "driver"),
		),
		NextRole: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next role"),
		),
		PrevRole: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev role"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev page"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next page"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),

		OpenTracking: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter/o", "track trip"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "b"),
			key.WithHelp("esc/b", "back"),
		),
	}
}

// ShortHelp implements help.KeyMap for the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.NextRole, k.Quit}
}

// FullHelp implements help.KeyMap for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Operator, k.Passenger, k.Driver, k.NextRole, k.PrevRole},
		{k.Up, k.Down, k.Enter},
		{k.OpenTracking, k.Back},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
