package nav

import (
	"errors"
	"testing"
)

func TestNewController_Defaults(t *testing.T) {
	t.Parallel()

	c := NewController()
	got := Resolve(c.State())
	if got.Role != RoleOperator || got.OperatorPage != PageOverview || !got.Sidebar {
		t.Fatalf("initial screen = %+v, want operator/overview with sidebar", got)
	}
	if s := c.State().PassengerScreen; s != ScreenHome {
		t.Fatalf("initial passenger screen = %v, want home", s)
	}
}

func TestSelectRole_LastSelectionWins(t *testing.T) {
	t.Parallel()

	sequences := [][]Role{
		{RoleDriver},
		{RolePassenger, RoleOperator},
		{RoleDriver, RoleDriver, RolePassenger},
		{RolePassenger, RoleDriver, RoleOperator, RoleDriver},
	}
	for _, seq := range sequences {
		c := NewController()
		for _, r := range seq {
			c.SelectRole(r)
		}
		want := seq[len(seq)-1]
		if got := Resolve(c.State()).Role; got != want {
			t.Fatalf("after %v rendered role = %v, want %v", seq, got, want)
		}
	}
}

func TestSelectRole_PassengerAlwaysResetsToHome(t *testing.T) {
	t.Parallel()

	c := NewController()
	c.SelectPassengerScreen(ScreenTracking)
	c.SelectRole(RolePassenger)
	if got := c.State().PassengerScreen; got != ScreenHome {
		t.Fatalf("passenger screen = %v, want home", got)
	}

	c.TogglePassengerScreen()
	if got := c.State().PassengerScreen; got != ScreenTracking {
		t.Fatalf("after toggle passenger screen = %v, want tracking", got)
	}

	// Reselecting the active passenger role still lands on home.
	c.SelectRole(RolePassenger)
	if got := c.State().PassengerScreen; got != ScreenHome {
		t.Fatalf("reselected passenger screen = %v, want home", got)
	}
}

func TestTogglePassengerScreen_OnlyHomeAndTracking(t *testing.T) {
	t.Parallel()

	c := NewController()
	c.SelectRole(RolePassenger)

	c.TogglePassengerScreen()
	if got := Resolve(c.State()); got.PassengerScreen != ScreenTracking || !got.BackControl {
		t.Fatalf("home toggle = %+v, want tracking with back control", got)
	}

	c.TogglePassengerScreen()
	if got := Resolve(c.State()); got.PassengerScreen != ScreenHome || got.BackControl {
		t.Fatalf("tracking toggle = %+v, want home without back control", got)
	}
}

func TestSelectOperatorPage_RendersMatchingPage(t *testing.T) {
	t.Parallel()

	c := NewController()
	for _, p := range OperatorPages() {
		c.SelectOperatorPage(p)
		if got := Resolve(c.State()).OperatorPage; got != p {
			t.Fatalf("rendered page = %v, want %v", got, p)
		}
	}
}

func TestSelectOperatorPage_WhileInactiveIsRetained(t *testing.T) {
	t.Parallel()

	c := NewController()
	c.SelectRole(RoleDriver)
	before := Resolve(c.State())

	c.SelectOperatorPage(PageMaintenance)
	if got := Resolve(c.State()); got != before {
		t.Fatalf("screen changed while driver active: %+v -> %+v", before, got)
	}
	if got := c.State().OperatorPage; got != PageMaintenance {
		t.Fatalf("stored page = %v, want maintenance", got)
	}

	c.SelectRole(RoleOperator)
	if got := Resolve(c.State()).OperatorPage; got != PageMaintenance {
		t.Fatalf("restored page = %v, want maintenance", got)
	}
}

func TestNavigationScenario(t *testing.T) {
	t.Parallel()

	c := NewController()
	steps := []struct {
		name string
		do   func()
		want string
	}{
		{"initial", func() {}, "Operator/Overview"},
		{"select fraud", func() { c.SelectOperatorPage(PageFraud) }, "Operator/Fraud"},
		{"to passenger", func() { c.SelectRole(RolePassenger) }, "Passenger/Home"},
		{"open tracking", func() { c.TogglePassengerScreen() }, "Passenger/Live Tracking"},
		{"back to operator", func() { c.SelectRole(RoleOperator) }, "Operator/Fraud"},
		{"passenger again", func() { c.SelectRole(RolePassenger) }, "Passenger/Home"},
	}
	for _, step := range steps {
		step.do()
		if got := Resolve(c.State()).Path(); got != step.want {
			t.Fatalf("%s: path = %q, want %q", step.name, got, step.want)
		}
	}
}

func TestCycleRolesAndPages(t *testing.T) {
	t.Parallel()

	c := NewController()
	c.NextRole()
	if got := c.State().Role; got != RolePassenger {
		t.Fatalf("next role = %v, want passenger", got)
	}
	c.PrevRole()
	c.PrevRole()
	if got := c.State().Role; got != RoleDriver {
		t.Fatalf("prev role wrap = %v, want driver", got)
	}

	c.PrevOperatorPage()
	if got := c.State().OperatorPage; got != PageSustainability {
		t.Fatalf("prev page wrap = %v, want sustainability", got)
	}
	c.NextOperatorPage()
	if got := c.State().OperatorPage; got != PageOverview {
		t.Fatalf("next page wrap = %v, want overview", got)
	}
}

func TestOnChange_FiresOnlyOnChange(t *testing.T) {
	t.Parallel()

	c := NewController()
	var calls []State
	c.OnChange(func(_, next State) { calls = append(calls, next) })

	c.SelectRole(RoleOperator) // already active
	c.SelectOperatorPage(PageOverview)
	if len(calls) != 0 {
		t.Fatalf("observer called %d times for no-op transitions", len(calls))
	}

	c.SelectRole(RoleDriver)
	if len(calls) != 1 || calls[0].Role != RoleDriver {
		t.Fatalf("observer calls = %+v, want one driver transition", calls)
	}
}

func TestResolve_UnknownPageFallsBackToOverview(t *testing.T) {
	t.Parallel()

	got := Resolve(State{Role: RoleOperator, OperatorPage: OperatorPage(99)})
	if got.OperatorPage != PageOverview {
		t.Fatalf("fallback page = %v, want overview", got.OperatorPage)
	}
}

func TestNewControllerAt_SanitizesInvalidFields(t *testing.T) {
	t.Parallel()

	c := NewControllerAt(State{Role: Role(7), OperatorPage: PageFraud, PassengerScreen: PassengerScreen(3)})
	got := c.State()
	if got.Role != RoleOperator || got.OperatorPage != PageFraud || got.PassengerScreen != ScreenHome {
		t.Fatalf("state = %+v, want operator/fraud/home", got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	if r, err := ParseRole(" Driver "); err != nil || r != RoleDriver {
		t.Fatalf("ParseRole = %v, %v", r, err)
	}
	if p, err := ParseOperatorPage("rl_recommendations"); err != nil || p != PageRLRecommendations {
		t.Fatalf("ParseOperatorPage = %v, %v", p, err)
	}
	if s, err := ParsePassengerScreen("tracking"); err != nil || s != ScreenTracking {
		t.Fatalf("ParsePassengerScreen = %v, %v", s, err)
	}

	_, err := ParseRole("admin")
	var unknown *UnknownValueError
	if !errors.As(err, &unknown) || unknown.Kind != "role" || unknown.Value != "admin" {
		t.Fatalf("ParseRole(admin) err = %v, want UnknownValueError", err)
	}
	for _, p := range OperatorPages() {
		if got, err := ParseOperatorPage(p.String()); err != nil || got != p {
			t.Fatalf("round trip %v = %v, %v", p, got, err)
		}
	}
}
