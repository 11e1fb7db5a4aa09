package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/authz"
	"github.com/airiskcouncil/arcctl/internal/session"
)

func stateFor(role authz.Role) session.State {
	return session.State{User: &api.User{ID: "u-1", Email: "member@example.com", Role: role}}
}

func TestProtected(t *testing.T) {
	tests := []struct {
		name  string
		state session.State
		want  Decision
	}{
		{
			name:  "anonymous redirects to login with destination preserved",
			state: session.State{},
			want:  Decision{Action: Redirect, Target: RouteLogin, ReturnTo: "/events"},
		},
		{
			name:  "restoring session waits",
			state: session.State{Loading: true},
			want:  Decision{Action: Wait},
		},
		{
			name:  "authenticated member allowed",
			state: stateFor(authz.RoleFreeMember),
			want:  Decision{Action: Allow},
		},
		{
			name:  "admin allowed",
			state: stateFor(authz.RoleAdmin),
			want:  Decision{Action: Allow},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Protected(tt.state, "/events"))
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name  string
		state session.State
		want  Decision
	}{
		{
			name:  "anonymous redirects to login",
			state: session.State{},
			want:  Decision{Action: Redirect, Target: RouteLogin, ReturnTo: "/admin/users"},
		},
		{
			name:  "restoring session waits",
			state: session.State{Loading: true},
			want:  Decision{Action: Wait},
		},
		{
			name:  "admin allowed",
			state: stateFor(authz.RoleAdmin),
			want:  Decision{Action: Allow},
		},
		{
			name:  "paid member silently sent home",
			state: stateFor(authz.RolePaidMember),
			want:  Decision{Action: Redirect, Target: RouteHome},
		},
		{
			name:  "executive silently sent home",
			state: stateFor(authz.RoleExecutive),
			want:  Decision{Action: Redirect, Target: RouteHome},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdminOnly(tt.state, "/admin/users"))
		})
	}
}

func TestGuestOnly(t *testing.T) {
	assert.Equal(t, Decision{Action: Allow}, GuestOnly(session.State{}))
	assert.Equal(t, Decision{Action: Wait}, GuestOnly(session.State{Loading: true}))
	assert.Equal(t,
		Decision{Action: Redirect, Target: RouteHome},
		GuestOnly(stateFor(authz.RoleFreeMember)))
}

func TestGuardReevaluation(t *testing.T) {
	// A guard holds no state of its own: the same call with a changed
	// snapshot yields a changed verdict.
	s := session.State{Loading: true}
	assert.Equal(t, Wait, Protected(s, "/news").Action)

	s = stateFor(authz.RoleUniversity)
	assert.Equal(t, Allow, Protected(s, "/news").Action)

	s = session.State{}
	d := Protected(s, "/news")
	assert.Equal(t, Redirect, d.Action)
	assert.Equal(t, "/news", d.ReturnTo)
}
