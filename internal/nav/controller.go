package nav

// ChangeFunc observes a transition that altered the state.
type ChangeFunc func(prev, next State)

// Controller owns the navigation state and is its only writer. It is not
// safe for concurrent use; the UI event loop is the single caller.
type Controller struct {
	state     State
	observers []ChangeFunc
}

// NewController returns a controller in DefaultState.
func NewController() *Controller {
	return &Controller{state: DefaultState()}
}

// NewControllerAt returns a controller starting from s. Invalid fields are
// replaced by their defaults.
func NewControllerAt(s State) *Controller {
	def := DefaultState()
	if !s.Role.Valid() {
		s.Role = def.Role
	}
	if !s.OperatorPage.Valid() {
		s.OperatorPage = def.OperatorPage
	}
	if s.PassengerScreen != ScreenHome && s.PassengerScreen != ScreenTracking {
		s.PassengerScreen = def.PassengerScreen
	}
	return &Controller{state: s}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// OnChange registers fn to run after each transition that changes state.
func (c *Controller) OnChange(fn ChangeFunc) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

func (c *Controller) apply(next State) {
	prev := c.state
	c.state = next
	if prev == next {
		return
	}
	for _, fn := range c.observers {
		fn(prev, next)
	}
}

// SelectRole switches the top-level view. Entering the passenger role
// always lands on the home screen.
func (c *Controller) SelectRole(r Role) {
	next := c.state
	next.Role = r
	if r == RolePassenger {
		next.PassengerScreen = ScreenHome
	}
	c.apply(next)
}

// SelectOperatorPage records the operator sub-page regardless of the active
// role; it becomes visible the next time the operator role is shown.
func (c *Controller) SelectOperatorPage(p OperatorPage) {
	next := c.state
	next.OperatorPage = p
	c.apply(next)
}

// SelectPassengerScreen sets the passenger screen directly.
func (c *Controller) SelectPassengerScreen(s PassengerScreen) {
	next := c.state
	next.PassengerScreen = s
	c.apply(next)
}

// TogglePassengerScreen flips between home and tracking.
func (c *Controller) TogglePassengerScreen() {
	if c.state.PassengerScreen == ScreenTracking {
		c.SelectPassengerScreen(ScreenHome)
		return
	}
	c.SelectPassengerScreen(ScreenTracking)
}

// NextRole selects the role after the current one, wrapping around.
func (c *Controller) NextRole() {
	roles := Roles()
	c.SelectRole(roles[(indexOfRole(roles, c.state.Role)+1)%len(roles)])
}

// PrevRole selects the role before the current one, wrapping around.
func (c *Controller) PrevRole() {
	roles := Roles()
	c.SelectRole(roles[(indexOfRole(roles, c.state.Role)-1+len(roles))%len(roles)])
}

// NextOperatorPage moves the operator page forward, wrapping around.
func (c *Controller) NextOperatorPage() {
	pages := OperatorPages()
	c.SelectOperatorPage(pages[(indexOfPage(pages, c.state.OperatorPage)+1)%len(pages)])
}

// PrevOperatorPage moves the operator page backward, wrapping around.
func (c *Controller) PrevOperatorPage() {
	pages := OperatorPages()
	c.SelectOperatorPage(pages[(indexOfPage(pages, c.state.OperatorPage)-1+len(pages))%len(pages)])
}

func indexOfRole(roles []Role, r Role) int {
	for i, v := range roles {
		if v == r {
			return i
		}
	}
	return 0
}

func indexOfPage(pages []OperatorPage, p OperatorPage) int {
	for i, v := range pages {
		if v == p {
			return i
		}
	}
	return 0
}
