// internal/app/features/coordinator/groupnew.go
package coordinator

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/inputval"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ServeNewGroup renders a fresh group-assignment form with one intern
// slot and the mentor/intern pools fetched from the service.
func (h *Handler) ServeNewGroup(w http.ResponseWriter, r *http.Request) {
	form := groupForm{
		NumInterns: models.MinInterns,
		Members:    make([]string, models.MinInterns),
	}
	h.renderGroupForm(w, r, form, "", "", "")
}

// HandleCreateGroup processes the assignment form.
//
// The form posts back to itself when the coordinator changes the team
// size or a selection (action=refresh): that pass only re-renders with
// recomputed slots and option lists, never submits. A real submission
// checks every invariant; a failed one re-renders with all prior values
// retained, and a successful one shows a fresh form with a banner.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogServerError(w, r, "group form parse failed", err,
			"Could not read the form.", "/coordinator/groups/new")
		return
	}

	form := parseGroupForm(r)

	if r.FormValue("action") == "refresh" {
		h.renderGroupForm(w, r, form, "", "", "")
		return
	}

	input := groupFormInput{
		GroupID:      form.GroupID,
		ProjectTitle: form.ProjectTitle,
		ProjectType:  form.ProjectType,
	}
	if result := inputval.Validate(input); result.HasErrors() {
		h.renderGroupForm(w, r, form, "", result.First(), "")
		return
	}
	if !models.ProjectType(form.ProjectType).Valid() {
		h.renderGroupForm(w, r, form, "", "Choose a valid project type.", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Gateway.ListUsers(ctx)
	if err != nil {
		h.failGateway(w, r, err, "user list fetch failed",
			"Could not load the selection lists.", "/coordinator")
		return
	}

	mentors, interns := splitByRole(users)
	if msg := validateSelections(form, mentors, interns); msg != "" {
		h.renderGroupFormWith(w, r, form, mentors, interns, "", msg, "")
		return
	}

	if err := h.Gateway.CreateGroup(ctx, auth.BearerToken(r), form.group("")); err != nil {
		if gateway.IsAuth(err) {
			h.failGateway(w, r, err, "group create rejected",
				"", "/coordinator")
			return
		}
		// Duplicate groupId and other service rejections come back here
		// with the service's own message; keep the filled form on screen.
		h.renderGroupFormWith(w, r, form, mentors, interns, "",
			serviceMessage(err, "Could not create the group."), "")
		return
	}

	h.Log.Info("group created",
		zap.String("groupId", form.GroupID),
		zap.Int("members", len(form.Members)),
		zap.String("reqID", middleware.GetReqID(r.Context())))

	fresh := groupForm{
		NumInterns: models.MinInterns,
		Members:    make([]string, models.MinInterns),
	}
	h.renderGroupFormWith(w, r, fresh, mentors, interns, "", "",
		"Group "+form.GroupID+" created.")
}

// renderGroupForm fetches the selection pools and renders the form.
func (h *Handler) renderGroupForm(w http.ResponseWriter, r *http.Request, form groupForm, editID, errMsg, okMsg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	users, err := h.Gateway.ListUsers(ctx)
	if err != nil {
		h.failGateway(w, r, err, "user list fetch failed",
			"Could not load the selection lists.", "/coordinator")
		return
	}

	mentors, interns := splitByRole(users)
	h.renderGroupFormWith(w, r, form, mentors, interns, editID, errMsg, okMsg)
}

// renderGroupFormWith renders the form against already-fetched pools.
func (h *Handler) renderGroupFormWith(w http.ResponseWriter, r *http.Request, form groupForm, mentors, interns []models.UserSummary, editID, errMsg, okMsg string) {
	title := "Create Group"
	name := "group_new"
	if editID != "" {
		title = "Edit Group"
		name = "group_edit"
	}

	data := groupFormData{
		BaseVM:       viewdata.NewBaseVM(r, title),
		Form:         form,
		Mentors:      mentors,
		Slots:        buildSlots(form, interns),
		ProjectTypes: models.ProjectTypes,
		InternCounts: internCounts(),
		EditID:       editID,
	}
	if errMsg != "" {
		data.SetError(errMsg)
	}
	if okMsg != "" {
		data.SetSuccess(okMsg)
	}
	templates.Render(w, r, name, data)
}
