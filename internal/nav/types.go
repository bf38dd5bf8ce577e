package nav

import "fmt"

// Role selects the top-level screen.
type Role int

const (
	RoleOperator Role = iota
	RolePassenger
	RoleDriver
)

var roleNames = [...]string{
	RoleOperator:  "operator",
	RolePassenger: "passenger",
	RoleDriver:    "driver",
}

var roleTitles = [...]string{
	RoleOperator:  "Operator",
	RolePassenger: "Passenger",
	RoleDriver:    "Driver",
}

// Roles returns all roles in display order.
func Roles() []Role {
	return []Role{RoleOperator, RolePassenger, RoleDriver}
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Title is the human label shown in the role bar.
func (r Role) Title() string {
	if r < 0 || int(r) >= len(roleTitles) {
		return r.String()
	}
	return roleTitles[r]
}

// Valid reports whether r is a declared role.
func (r Role) Valid() bool {
	return r >= 0 && int(r) < len(roleNames)
}

// OperatorPage is one of the analytics sub-screens of the operator role.
type OperatorPage int

const (
	PageOverview OperatorPage = iota
	PageRLRecommendations
	PageDemandForecast
	PageEmotionSafety
	PageDriverBehavior
	PageMaintenance
	PageFraud
	PageSustainability
)

var pageNames = [...]string{
	PageOverview:          "overview",
	PageRLRecommendations: "rl-recommendations",
	PageDemandForecast:    "demand-forecast",
	PageEmotionSafety:     "emotion-safety",
	PageDriverBehavior:    "driver-behavior",
	PageMaintenance:       "maintenance",
	PageFraud:             "fraud",
	PageSustainability:    "sustainability",
}

var pageTitles = [...]string{
	PageOverview:          "Overview",
	PageRLRecommendations: "RL Recommendations",
	PageDemandForecast:    "Demand Forecast",
	PageEmotionSafety:     "Emotion & Safety",
	PageDriverBehavior:    "Driver Behavior",
	PageMaintenance:       "Maintenance",
	PageFraud:             "Fraud",
	PageSustainability:    "Sustainability",
}

// OperatorPages returns all operator pages in sidebar order.
func OperatorPages() []OperatorPage {
	return []OperatorPage{
		PageOverview,
		PageRLRecommendations,
		PageDemandForecast,
		PageEmotionSafety,
		PageDriverBehavior,
		PageMaintenance,
		PageFraud,
		PageSustainability,
	}
}

func (p OperatorPage) String() string {
	if !p.Valid() {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// Title is the human label shown in the sidebar.
func (p OperatorPage) Title() string {
	if !p.Valid() {
		return p.String()
	}
	return pageTitles[p]
}

// Valid reports whether p is a declared operator page.
func (p OperatorPage) Valid() bool {
	return p >= 0 && int(p) < len(pageNames)
}

// PassengerScreen is one of the two passenger screens.
type PassengerScreen int

const (
	ScreenHome PassengerScreen = iota
	ScreenTracking
)

func (s PassengerScreen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenTracking:
		return "tracking"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// Title is the human label for the passenger screen.
func (s PassengerScreen) Title() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenTracking:
		return "Live Tracking"
	}
	return s.String()
}

// State is the navigation triple. OperatorPage and PassengerScreen are kept
// while their role is inactive.
type State struct {
	Role            Role
	OperatorPage    OperatorPage
	PassengerScreen PassengerScreen
}

// DefaultState is the state every session starts in.
func DefaultState() State {
	return State{
		Role:            RoleOperator,
		OperatorPage:    PageOverview,
		PassengerScreen: ScreenHome,
	}
}
