// internal/app/system/authz/roles.go
package authz

import "github.com/dalemusser/internhub/internal/domain/models"

// LandingPath is the single role→route mapping. It is consulted at three
// points: the root-path redirect for authenticated users, the redirect
// after login succeeds, and the guard's reroute for wrong-role access.
// All three must go through this function; branching on roles anywhere
// else risks the mappings drifting apart.
//
// It is total: unknown or empty roles land on /login.
func LandingPath(role string) string {
	switch models.Role(role) {
	case models.RoleCoordinator:
		return "/coordinator"
	case models.RoleMentor:
		return "/mentor"
	case models.RoleIntern:
		return "/intern"
	case models.RoleUser:
		return "/pending"
	default:
		return "/login"
	}
}
