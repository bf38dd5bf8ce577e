package nav

import (
	"fmt"
	"strings"
)

// UnknownValueError is returned when a string does not name a member of
// one of the navigation enumerations.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

// ParseRole maps a role name (case-insensitive) to a Role.
func ParseRole(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, r := range Roles() {
		if r.String() == needle {
			return r, nil
		}
	}
	return RoleOperator, &UnknownValueError{Kind: "role", Value: s}
}

// ParseOperatorPage maps a page name such as "demand-forecast" to an
// OperatorPage. Underscores are accepted in place of dashes.
func ParseOperatorPage(s string) (OperatorPage, error) {
	needle := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, p := range OperatorPages() {
		if p.String() == needle {
			return p, nil
		}
	}
	return PageOverview, &UnknownValueError{Kind: "operator page", Value: s}
}

// ParsePassengerScreen maps "home" or "tracking" to a PassengerScreen.
func ParsePassengerScreen(s string) (PassengerScreen, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return ScreenHome, nil
	case "tracking":
		return ScreenTracking, nil
	}
	return ScreenHome, &UnknownValueError{Kind: "passenger screen", Value: s}
}
