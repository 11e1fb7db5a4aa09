// Package guard decides whether a screen may render for the current
// session. Guards are pure functions of a session snapshot: they read
// state, never mutate it, and are re-evaluated on every render so a
// session change reroutes any mounted screen immediately.
package guard

import (
	"github.com/airiskcouncil/arcctl/internal/authz"
	"github.com/airiskcouncil/arcctl/internal/session"
)

// Well-known routes guards redirect to.
const (
	RouteHome  = "/"
	RouteLogin = "/membership"
)

// Action is the outcome of a guard check.
type Action int

const (
	// Allow renders the guarded content.
	Allow Action = iota
	// Wait shows a spinner while the session is restoring.
	Wait
	// Redirect sends the user elsewhere.
	Redirect
)

// Decision is a guard verdict. For redirects to the login entry, ReturnTo
// preserves the original destination so the user can be sent back after
// signing in.
type Decision struct {
	Action   Action
	Target   string
	ReturnTo string
}

// Protected admits any authenticated user. Anonymous visitors are sent to
// the membership entry with their destination preserved.
func Protected(s session.State, destination string) Decision {
	if s.Loading {
		return Decision{Action: Wait}
	}
	if !s.Authenticated() {
		return Decision{Action: Redirect, Target: RouteLogin, ReturnTo: destination}
	}
	return Decision{Action: Allow}
}

// AdminOnly admits administrators. Authenticated non-admins are silently
// sent home; no error is shown.
func AdminOnly(s session.State, destination string) Decision {
	if s.Loading {
		return Decision{Action: Wait}
	}
	if !s.Authenticated() {
		return Decision{Action: Redirect, Target: RouteLogin, ReturnTo: destination}
	}
	if s.User.Role != authz.RoleAdmin {
		return Decision{Action: Redirect, Target: RouteHome}
	}
	return Decision{Action: Allow}
}

// GuestOnly admits anonymous visitors (login and registration screens).
// A signed-in user is sent home instead of seeing the login form again.
func GuestOnly(s session.State) Decision {
	if s.Loading {
		return Decision{Action: Wait}
	}
	if s.Authenticated() {
		return Decision{Action: Redirect, Target: RouteHome}
	}
	return Decision{Action: Allow}
}
