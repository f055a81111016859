package session

type Route string

const (
	RouteHome      Route = "home"
	RouteDashboard Route = "dashboard"
	RouteCalendar  Route = "calendar"
	RouteProfile   Route = "me"
)

var protected = map[Route]bool{
	RouteDashboard: true,
	RouteCalendar:  true,
	RouteProfile:   true,
}

func (r Route) Protected() bool {
	return protected[r]
}

type Decision struct {
	// Wait is set while the user is still being loaded
	Wait bool
	To   Route
}

// Resolve decides where a request for route ends up given the auth state.
// The provider never navigates, callers observe state and resolve.
func Resolve(state State, route Route) Decision {
	if state.Loading {
		return Decision{Wait: true, To: route}
	}
	if !state.Authenticated() && route.Protected() {
		return Decision{To: RouteHome}
	}
	if state.Authenticated() && route == RouteHome {
		return Decision{To: RouteDashboard}
	}
	return Decision{To: route}
}
