// internal/domain/models/group.go
package models

// ProjectType is the fixed project-category enum offered on the group
// assignment form. The list is owned by the service; these values mirror it.
type ProjectType string

// ProjectTypes lists the selectable project categories in form order.
var ProjectTypes = []ProjectType{
	"cloud&devops",
	"cybersecurity",
	"dataScience",
	"fullStack",
	"java",
	"python",
	"react",
	"webDevelopment",
}

// Valid reports whether p is one of the known project types.
func (p ProjectType) Valid() bool {
	for _, t := range ProjectTypes {
		if p == t {
			return true
		}
	}
	return false
}

// Group pairs one mentor with one to three interns under a named project.
//
// NOTE:
//   - GroupID is the coordinator-assigned identifier, distinct from the
//     service's record ID.
//   - UserIDs is the composite list the service expects on create/update:
//     the mentor's ID first, then the member IDs in slot order.
type Group struct {
	ID           string      `json:"_id,omitempty"`
	GroupID      string      `json:"groupId"`
	ProjectTitle string      `json:"projectTitle"`
	ProjectType  ProjectType `json:"projectType"`
	MentorID     string      `json:"groupMentor"`
	MemberIDs    []string    `json:"groupMembers"`
	UserIDs      []string    `json:"userId"`
}

// MentorGroup is the mentor-scoped view of a group, with member identities
// expanded so the task-assignment and progress screens can show names.
type MentorGroup struct {
	ID           string        `json:"_id"`
	GroupID      string        `json:"groupId"`
	ProjectTitle string        `json:"projectTitle"`
	ProjectType  ProjectType   `json:"projectType"`
	Mentor       *UserSummary  `json:"groupMentor,omitempty"`
	Members      []UserSummary `json:"groupMembers"`
}

// MinInterns and MaxInterns bound the member count a coordinator can pick
// on the group assignment form.
const (
	MinInterns = 1
	MaxInterns = 3
)
