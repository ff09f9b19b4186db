// Package guard gates access to role-scoped areas of the application.
// It is a pure function of the current session state: it holds nothing
// between evaluations beyond what the credential store already persists.
package guard

import (
	"github.com/dmaraujo/agendo/auth"
)

// Application routes the redirect table depends on.
const (
	LoginRoute = "/login"
	ClientRoot = "/client"
	AdminRoot  = "/admin"
	PublicRoot = "/"
)

// Region is a protected area of the application. An empty AllowedRoles
// slice means any authenticated user may enter.
type Region struct {
	Path         string
	AllowedRoles []auth.Role
}

// Well-known protected regions.
var (
	ClientArea = Region{Path: ClientRoot, AllowedRoles: []auth.Role{auth.RoleClient}}
	AdminArea  = Region{Path: AdminRoot, AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RoleOwner}}
)

// Decision is the outcome of evaluating a region against the session.
// When Allowed is false, RedirectTo names the route the user belongs at.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Evaluate runs the three ordered checks for a protected region:
// authentication, then authorization, then admission. It short-circuits
// at the first redirect.
func Evaluate(authenticated bool, role auth.Role, region Region) Decision {
	if !authenticated {
		return Decision{RedirectTo: LoginRoute}
	}

	if len(region.AllowedRoles) > 0 && !roleAllowed(role, region.AllowedRoles) {
		return Decision{RedirectTo: HomeFor(role)}
	}

	return Decision{Allowed: true}
}

// HomeFor returns the area root matching a role. Operators land in the
// admin area, clients in the client area, everyone else at the public root.
func HomeFor(role auth.Role) string {
	switch role {
	case auth.RoleOwner, auth.RoleAdmin:
		return AdminRoot
	case auth.RoleClient:
		return ClientRoot
	default:
		return PublicRoot
	}
}

func roleAllowed(role auth.Role, allowed []auth.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
