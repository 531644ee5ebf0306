// internal/domain/models/task.go
package models

// Task is one entry in a mentor-assigned batch. Interns flip IsComplete one
// task at a time; the service is the arbiter of the stored state.
type Task struct {
	ID          string `json:"_id,omitempty"`
	Description string `json:"description"`
	IsComplete  bool   `json:"is_complete"`
}

// TaskBatch is an ordered set of tasks a mentor assigned to a group in one
// action. The intern task screen groups its list by batch.
type TaskBatch struct {
	ID      string       `json:"_id"`
	GroupID string       `json:"groupId"`
	Mentor  *UserSummary `json:"groupMentor,omitempty"`
	Tasks   []Task       `json:"tasks"`
}

// MinTasksPerBatch and MaxTasksPerBatch bound the number of tasks a
// mentor can declare on the assignment form.
const (
	MinTasksPerBatch = 1
	MaxTasksPerBatch = 5
)

// MemberProgress is one member's completion tally inside a progress report.
// The counts come from the service; Percentage is derived locally for
// display.
type MemberProgress struct {
	UserID         string `json:"userId"`
	FullName       string `json:"fullName"`
	CompletedCount int    `json:"completedCount"`
	TotalCount     int    `json:"totalCount"`
}

// Percentage returns the completion ratio as 0-100. A member with no
// assigned tasks reports 0, never a division by zero.
func (m MemberProgress) Percentage() float64 {
	if m.TotalCount <= 0 {
		return 0
	}
	return float64(m.CompletedCount) / float64(m.TotalCount) * 100
}

// ProgressSnapshot is the per-member completion report for one group,
// computed on demand by the service. It is derived data and never cached.
type ProgressSnapshot struct {
	GroupID string           `json:"groupId"`
	Members []MemberProgress `json:"members"`
}
