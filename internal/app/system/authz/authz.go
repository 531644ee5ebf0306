// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/auth"
)

// UserCtx returns the user's role, name, ID, and a found flag. ok=true
// means a fully populated, authenticated session user.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", "", false
	}
	return user.Role, user.Name, user.ID, true
}

// IsCoordinator reports whether the current request's user is a coordinator.
func IsCoordinator(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "Coordinator"
}

// IsMentor reports whether the current request's user is a mentor.
func IsMentor(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "Mentor"
}

// IsIntern reports whether the current request's user is an intern.
func IsIntern(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "Intern"
}

// IsPending reports whether the current request's user still has the
// default "User" role (awaiting role assignment).
func IsPending(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "User"
}
