package tui

import (
	"github.com/airiskcouncil/arcctl/internal/guard"
	"github.com/airiskcouncil/arcctl/internal/session"
)

// route identifies a screen in the browse TUI.
type route int

const (
	routeHome route = iota
	routeLogin
	routeRegister
	routeEvents
	routeNews
	routeQnA
	routeQnADetail
	routeResources
	routeTeam
	routeProfile
	routeAdminUsers
)

var routePaths = map[route]string{
	routeHome:       guard.RouteHome,
	routeLogin:      guard.RouteLogin,
	routeRegister:   "/register",
	routeEvents:     "/events",
	routeNews:       "/news",
	routeQnA:        "/qna",
	routeQnADetail:  "/qna/detail",
	routeResources:  "/resources",
	routeTeam:       "/team",
	routeProfile:    "/profile",
	routeAdminUsers: "/admin/users",
}

var pathRoutes = func() map[string]route {
	m := make(map[string]route, len(routePaths))
	for r, p := range routePaths {
		m[p] = r
	}
	return m
}()

func (r route) path() string {
	return routePaths[r]
}

func (r route) title() string {
	switch r {
	case routeHome:
		return "AI Risk Council"
	case routeLogin:
		return "Member login"
	case routeRegister:
		return "Membership application"
	case routeEvents:
		return "Events"
	case routeNews:
		return "News"
	case routeQnA:
		return "Q&A forum"
	case routeQnADetail:
		return "Question"
	case routeResources:
		return "Resource library"
	case routeTeam:
		return "Council team"
	case routeProfile:
		return "Profile"
	case routeAdminUsers:
		return "Member administration"
	default:
		return "Unknown"
	}
}

// decide runs the guard for a route against a session snapshot. Guards are
// re-evaluated on every render, so a session change reroutes the screen
// without any navigation bookkeeping.
func decide(r route, s session.State) guard.Decision {
	switch r {
	case routeLogin, routeRegister:
		return guard.GuestOnly(s)
	case routeHome, routeNews, routeTeam:
		return guard.Decision{Action: guard.Allow}
	case routeAdminUsers:
		return guard.AdminOnly(s, r.path())
	default:
		return guard.Protected(s, r.path())
	}
}
