// internal/app/features/coordinator/types.go
package coordinator

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
)

// groupForm carries the group-assignment form state across renders, so a
// failed submission keeps every field value for correction and resubmit.
type groupForm struct {
	GroupID      string
	ProjectTitle string
	ProjectType  string
	MentorID     string
	NumInterns   int
	// Members has exactly NumInterns entries; unfilled slots are "".
	Members []string
}

// groupFormInput defines validation rules for the text fields; the
// selection invariants (mentor chosen, slots filled, no duplicates) are
// checked separately because they depend on the fetched user lists.
type groupFormInput struct {
	GroupID      string `validate:"required,max=60" label:"Group ID"`
	ProjectTitle string `validate:"required,max=200" label:"Project title"`
	ProjectType  string `validate:"required" label:"Project type"`
}

// parseGroupForm reads the form fields. NumInterns is clamped to the
// allowed 1..3 range, and the member list is truncated to exactly
// NumInterns slots: lowering the count drops the trailing selections,
// raising it adds empty slots.
func parseGroupForm(r *http.Request) groupForm {
	f := groupForm{
		GroupID:      normalize.Text(r.FormValue("groupId")),
		ProjectTitle: normalize.Text(r.FormValue("projectTitle")),
		ProjectType:  normalize.Text(r.FormValue("projectType")),
		MentorID:     normalize.ID(r.FormValue("groupMentor")),
		NumInterns:   parseNumInterns(r.FormValue("numInterns")),
	}

	f.Members = make([]string, f.NumInterns)
	for i := 0; i < f.NumInterns; i++ {
		f.Members[i] = normalize.ID(r.FormValue("member" + strconv.Itoa(i)))
	}
	return f
}

func parseNumInterns(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < models.MinInterns {
		return models.MinInterns
	}
	if n > models.MaxInterns {
		return models.MaxInterns
	}
	return n
}

// chosenMembers returns the non-empty member selections in slot order.
func (f groupForm) chosenMembers() []string {
	var out []string
	for _, id := range f.Members {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// group builds the submission payload. The composite UserIDs list is
// always [mentor, members...] in that order; the service expects it on
// both create and full-replacement update.
func (f groupForm) group(recordID string) models.Group {
	members := f.chosenMembers()
	return models.Group{
		ID:           recordID,
		GroupID:      f.GroupID,
		ProjectTitle: f.ProjectTitle,
		ProjectType:  models.ProjectType(f.ProjectType),
		MentorID:     f.MentorID,
		MemberIDs:    members,
		UserIDs:      append([]string{f.MentorID}, members...),
	}
}

// internSlot pairs one member select with its per-slot option list.
// Number is the 1-based label shown next to the select.
type internSlot struct {
	Index    int
	Number   int
	Selected string
	Options  []models.UserSummary
}

// groupFormData is the view model for the create and edit forms.
type groupFormData struct {
	viewdata.BaseVM
	Form         groupForm
	Mentors      []models.UserSummary
	Slots        []internSlot
	ProjectTypes []models.ProjectType
	InternCounts []int
	// EditID is the group record being replaced; empty on the create form.
	EditID string
}

// usersPageData is the view model for the user-management table.
type usersPageData struct {
	viewdata.BaseVM
	Users []models.UserSummary
	Roles []models.Role
}

// groupsPageData is the view model for the group-management table. Names
// are resolved from the user list so the table shows people, not IDs.
type groupsPageData struct {
	viewdata.BaseVM
	Groups []groupRow
}

type groupRow struct {
	models.Group
	MentorName  string
	MemberNames []string
}

// internCounts enumerates the selectable team sizes for the count select.
func internCounts() []int {
	counts := make([]int, 0, models.MaxInterns-models.MinInterns+1)
	for n := models.MinInterns; n <= models.MaxInterns; n++ {
		counts = append(counts, n)
	}
	return counts
}
