package tui

import (
	"github.com/smarttransit/transitdash/internal/model"
	"github.com/smarttransit/transitdash/internal/nav"
)

// ViewContext provides read-only context to content renderers. Renderers get
// the dataset and their box size and never see the navigation controller.
type ViewContext struct {
	Data          *model.Dataset
	ContentWidth  int
	ContentHeight int
}

// Intent is what a mouse hit on the dashboard asks for. The App turns an
// intent into the matching controller operation.
type Intent int

const (
	IntentNone Intent = iota
	IntentSelectRole
	IntentSelectPage
	IntentOpenTracking
	IntentBack
)

// HitResult is the outcome of hit-testing a mouse position.
type HitResult struct {
	Intent Intent
	Role   nav.Role
	Page   nav.OperatorPage
}
