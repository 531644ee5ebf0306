// internal/app/features/coordinator/roles.go
package coordinator

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type rolesPageData struct {
	viewdata.BaseVM
	Assignments []models.RoleAssignment
}

// ServeRoleAssignments renders the role-assignment register with a
// remove action per entry.
func (h *Handler) ServeRoleAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	assignments, err := h.Gateway.ListRoleAssignments(ctx, auth.BearerToken(r))
	if err != nil {
		h.failGateway(w, r, err, "role assignment fetch failed",
			"Could not load the role assignments.", "/coordinator")
		return
	}

	data := rolesPageData{
		BaseVM:      viewdata.NewBaseVM(r, "Role Assignments"),
		Assignments: assignments,
	}
	if notice := normalize.Text(r.URL.Query().Get("notice")); notice != "" {
		data.SetSuccess(notice)
	}
	templates.Render(w, r, "role_list", data)
}

// HandleDeleteRoleAssignment removes one register entry, dropping the
// account back to the default "User" role.
func (h *Handler) HandleDeleteRoleAssignment(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))
	if id == "" {
		http.Redirect(w, r, "/coordinator/roles", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.DeleteRoleAssignment(ctx, auth.BearerToken(r), id); err != nil {
		h.failGateway(w, r, err, "role assignment delete failed",
			"Could not remove the assignment.", "/coordinator/roles")
		return
	}

	h.Log.Info("role assignment removed", zap.String("id", id))
	http.Redirect(w, r, rolesURL("Role assignment removed."), http.StatusSeeOther)
}

func rolesURL(notice string) string {
	return "/coordinator/roles?notice=" + url.QueryEscape(notice)
}
