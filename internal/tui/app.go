package tui

import (
	"io"
	"time"

	"github.com/smarttransit/transitdash/internal/apiclient"
	"github.com/smarttransit/transitdash/internal/model"
	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// App is the top-level Bubble Tea model. It owns the navigation controller
// and hands the current selection to the content renderers. Bubble Tea
// delivers messages one at a time, so every transition completes before the
// next View call.
type App struct {
	nav  *nav.Controller
	data *model.Dataset
	keys KeyMap
	help help.Model
	log  *logrus.Entry

	health         HealthChecker
	healthInterval time.Duration
	lastHealth     apiclient.Health

	width         int
	height        int
	sidebarCursor int
	showHelp      bool
	helpViewport  viewport.Model
}

// Option configures an App.
type Option func(*App)

// WithStartState starts navigation from s instead of the default state.
func WithStartState(s nav.State) Option {
	return func(a *App) {
		a.nav = nav.NewControllerAt(s)
	}
}

// WithHealthChecker enables the API connectivity indicator. A zero interval
// checks once at start-up only.
func WithHealthChecker(h HealthChecker, interval time.Duration) Option {
	return func(a *App) {
		a.health = h
		a.healthInterval = interval
	}
}

// WithLogger sets the logger used for navigation and health events.
func WithLogger(l *logrus.Entry) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(a *App) {
		a.keys = k
	}
}

// NewApp creates the dashboard for the given dataset.
func NewApp(data *model.Dataset, opts ...Option) *App {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	a := &App{
		nav:          nav.NewController(),
		data:         data,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		log:          logrus.NewEntry(quiet),
		helpViewport: viewport.New(80, 20),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.data == nil {
		a.data = &model.Dataset{}
	}
	a.log = a.log.WithField("component", "tui")

	// The cursor follows every transition, including ones made directly on
	// the controller while another role is shown.
	a.nav.OnChange(func(prev, next nav.State) {
		a.syncSidebarCursor()
		a.log.WithFields(logrus.Fields{
			"from": nav.Resolve(prev).Path(),
			"to":   nav.Resolve(next).Path(),
		}).Debug("navigation")
	})
	a.syncSidebarCursor()
	return a
}

// Navigation exposes the controller, mainly for tests and embedding.
func (a *App) Navigation() *nav.Controller {
	return a.nav
}

// Init starts the first health check and its pending spinner when a checker
// is configured.
func (a *App) Init() tea.Cmd {
	if a.health == nil {
		return nil
	}
	return tea.Batch(a.healthCmd(), a.startSpinnerIfNeeded())
}

// Update applies one message. Each key press or click maps to at most one
// controller transition.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.MouseMsg:
		return a.handleMouseEvent(msg)

	case healthMsg:
		return a, a.applyHealth(apiclient.Health(msg))

	case SpinnerTickMsg:
		return a.handleSpinnerTick()

	case healthTickMsg:
		if a.health == nil {
			return a, nil
		}
		return a, a.healthCmd()
	}
	return a, nil
}
