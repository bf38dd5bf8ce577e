package nav

import "fmt"

// Screen is the render decision derived from a State. Only the fields that
// belong to Role are meaningful.
type Screen struct {
	Role            Role
	Sidebar         bool
	OperatorPage    OperatorPage
	PassengerScreen PassengerScreen
	BackControl     bool
}

// Resolve maps a state onto the screen that should be drawn. Operator pages
// outside the declared set fall back to the overview.
func Resolve(s State) Screen {
	switch s.Role {
	case RolePassenger:
		if s.PassengerScreen == ScreenTracking {
			return Screen{Role: RolePassenger, PassengerScreen: ScreenTracking, BackControl: true}
		}
		return Screen{Role: RolePassenger, PassengerScreen: ScreenHome}
	case RoleDriver:
		return Screen{Role: RoleDriver}
	default:
		page := s.OperatorPage
		if !page.Valid() {
			page = PageOverview
		}
		return Screen{Role: RoleOperator, Sidebar: true, OperatorPage: page}
	}
}

// Path is a short location label such as "Operator/Fraud".
func (sc Screen) Path() string {
	switch sc.Role {
	case RolePassenger:
		return fmt.Sprintf("%s/%s", sc.Role.Title(), sc.PassengerScreen.Title())
	case RoleDriver:
		return sc.Role.Title()
	default:
		return fmt.Sprintf("%s/%s", sc.Role.Title(), sc.OperatorPage.Title())
	}
}
