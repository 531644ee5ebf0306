// internal/domain/models/user.go
package models

// Role is the set of dashboard roles assigned by the internship service.
//
// "User" is the default role for a freshly registered account; it stays
// that way until a coordinator promotes the account to Mentor or Intern.
type Role string

const (
	RoleCoordinator Role = "Coordinator"
	RoleMentor      Role = "Mentor"
	RoleIntern      Role = "Intern"
	RoleUser        Role = "User"
)

// Roles lists every role the service can assign, in the order the
// coordinator screens present them.
var Roles = []Role{RoleCoordinator, RoleMentor, RoleIntern, RoleUser}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCoordinator, RoleMentor, RoleIntern, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// UserSummary is the identity record the internship service returns for a
// user. The dashboard holds a read-only copy: one cached inside the session
// for the signed-in user, and transient copies for the selection lists on
// the coordinator screens.
//
// Field tags follow the service's wire names (_id, userRole).
type UserSummary struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"userRole"`
}

// RoleAssignment is one entry in the service's role-assignment register.
// Removing an assignment drops the account back to the default "User"
// role. The register uses plain field names, not the _id/userRole tags
// of the account records.
type RoleAssignment struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
