// internal/app/features/coordinator/groupedit.go
package coordinator

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/inputval"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeEditGroup renders the edit form pre-filled from the stored group.
// The slot count starts at the group's current size and can be changed
// like on the create form.
func (h *Handler) ServeEditGroup(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.findGroup(ctx, auth.BearerToken(r), id)
	if err != nil {
		h.failGateway(w, r, err, "group fetch failed",
			"Could not load the group.", "/coordinator/groups")
		return
	}
	if group == nil {
		http.Redirect(w, r, groupsURL("That group no longer exists."), http.StatusSeeOther)
		return
	}

	form := groupForm{
		GroupID:      group.GroupID,
		ProjectTitle: group.ProjectTitle,
		ProjectType:  string(group.ProjectType),
		MentorID:     group.MentorID,
		NumInterns:   clampInterns(len(group.MemberIDs)),
	}
	form.Members = make([]string, form.NumInterns)
	copy(form.Members, group.MemberIDs)

	h.renderGroupForm(w, r, form, id, "", "")
}

// HandleEditGroup submits a full replacement of the group record. The
// same invariants as creation apply; success returns to the management
// table, which refetches from the service.
func (h *Handler) HandleEditGroup(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogServerError(w, r, "group form parse failed", err,
			"Could not read the form.", "/coordinator/groups")
		return
	}

	form := parseGroupForm(r)

	if r.FormValue("action") == "refresh" {
		h.renderGroupForm(w, r, form, id, "", "")
		return
	}

	input := groupFormInput{
		GroupID:      form.GroupID,
		ProjectTitle: form.ProjectTitle,
		ProjectType:  form.ProjectType,
	}
	if result := inputval.Validate(input); result.HasErrors() {
		h.renderGroupForm(w, r, form, id, result.First(), "")
		return
	}
	if !models.ProjectType(form.ProjectType).Valid() {
		h.renderGroupForm(w, r, form, id, "Choose a valid project type.", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Gateway.ListUsers(ctx)
	if err != nil {
		h.failGateway(w, r, err, "user list fetch failed",
			"Could not load the selection lists.", "/coordinator/groups")
		return
	}

	mentors, interns := splitByRole(users)
	if msg := validateSelections(form, mentors, interns); msg != "" {
		h.renderGroupFormWith(w, r, form, mentors, interns, id, msg, "")
		return
	}

	if err := h.Gateway.UpdateGroup(ctx, auth.BearerToken(r), form.group(id)); err != nil {
		if gateway.IsAuth(err) {
			h.failGateway(w, r, err, "group update rejected",
				"", "/coordinator/groups")
			return
		}
		h.renderGroupFormWith(w, r, form, mentors, interns, id,
			serviceMessage(err, "Could not update the group."), "")
		return
	}

	h.Log.Info("group updated", zap.String("id", id), zap.String("groupId", form.GroupID))
	http.Redirect(w, r, groupsURL("Group "+form.GroupID+" updated."), http.StatusSeeOther)
}

// HandleDeleteGroup removes a group and returns to the refetched table.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))
	if id == "" {
		http.Redirect(w, r, "/coordinator/groups", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.DeleteGroup(ctx, auth.BearerToken(r), id); err != nil {
		h.failGateway(w, r, err, "group delete failed",
			"Could not delete the group.", "/coordinator/groups")
		return
	}

	h.Log.Info("group deleted", zap.String("id", id))
	http.Redirect(w, r, groupsURL("Group deleted."), http.StatusSeeOther)
}

// findGroup locates one group by record ID in the full listing; the
// service has no single-group read.
func (h *Handler) findGroup(ctx context.Context, token, id string) (*models.Group, error) {
	groups, err := h.Gateway.ListGroups(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i], nil
		}
	}
	return nil, nil
}

func clampInterns(n int) int {
	if n < models.MinInterns {
		return models.MinInterns
	}
	if n > models.MaxInterns {
		return models.MaxInterns
	}
	return n
}

func groupsURL(notice string) string {
	return "/coordinator/groups?notice=" + url.QueryEscape(notice)
}
