// internal/app/features/coordinator/workflow.go
package coordinator

import (
	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/domain/models"
)

// serviceMessage surfaces the service's own rejection text when it has
// one (duplicate groupId, bad reference) and falls back otherwise.
func serviceMessage(err error, fallback string) string {
	ge := gateway.AsError(err)
	if ge.Kind == gateway.KindValidation && ge.Message != "" {
		return ge.Message
	}
	return fallback
}

// splitByRole partitions the user list into the two selection pools the
// group form needs. Coordinators and pending users never appear in either.
func splitByRole(users []models.UserSummary) (mentors, interns []models.UserSummary) {
	for _, u := range users {
		switch u.Role {
		case models.RoleMentor:
			mentors = append(mentors, u)
		case models.RoleIntern:
			interns = append(interns, u)
		}
	}
	return mentors, interns
}

// buildSlots computes the per-slot option lists. Each slot excludes the
// interns already chosen in a different slot, but always keeps its own
// current selection so a filled select does not lose its value on
// re-render.
func buildSlots(form groupForm, interns []models.UserSummary) []internSlot {
	slots := make([]internSlot, form.NumInterns)
	for i := 0; i < form.NumInterns; i++ {
		taken := make(map[string]struct{}, form.NumInterns)
		for j, id := range form.Members {
			if j != i && id != "" {
				taken[id] = struct{}{}
			}
		}

		var opts []models.UserSummary
		for _, u := range interns {
			if _, claimed := taken[u.ID]; claimed {
				continue
			}
			opts = append(opts, u)
		}

		slots[i] = internSlot{Index: i, Number: i + 1, Selected: form.Members[i], Options: opts}
	}
	return slots
}

// validateSelections checks the invariants the select widgets cannot fully
// enforce on their own: a mentor is chosen and holds the Mentor role, and
// exactly NumInterns distinct interns fill the slots. Returns "" when the
// form is submittable.
func validateSelections(form groupForm, mentors, interns []models.UserSummary) string {
	if form.MentorID == "" {
		return "Choose a mentor for the group."
	}
	if !containsUser(mentors, form.MentorID) {
		return "The chosen mentor is not available."
	}

	seen := make(map[string]struct{}, form.NumInterns)
	filled := 0
	for _, id := range form.Members {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return "Each intern can only be assigned to one slot."
		}
		if !containsUser(interns, id) {
			return "One of the chosen interns is not available."
		}
		seen[id] = struct{}{}
		filled++
	}

	if filled != form.NumInterns {
		return "Select an intern for every slot before creating the group."
	}
	return ""
}

func containsUser(users []models.UserSummary, id string) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// nameIndex maps user IDs to display names for the group table.
func nameIndex(users []models.UserSummary) map[string]string {
	idx := make(map[string]string, len(users))
	for _, u := range users {
		idx[u.ID] = u.FullName
	}
	return idx
}
