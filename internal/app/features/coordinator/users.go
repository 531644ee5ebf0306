// internal/app/features/coordinator/users.go
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

// ServeUsers renders the user-management table: every account with its
// current role, a role selector, and a remove action.
func (h *Handler) ServeUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Gateway.ListUsers(ctx)
	if err != nil {
		h.failGateway(w, r, err, "user list fetch failed",
			"Could not load the user list.", "/coordinator")
		return
	}

	data := usersPageData{
		BaseVM: viewdata.NewBaseVM(r, "Manage Users"),
		Users:  users,
		Roles:  models.Roles,
	}
	if notice := normalize.Text(r.URL.Query().Get("notice")); notice != "" {
		data.SetSuccess(notice)
	}
	templates.Render(w, r, "coordinator_users", data)
}

// HandleUpdateRole assigns a new role to one account. The table is always
// refetched after the change rather than patched in place, so the screen
// shows exactly what the service now holds.
func (h *Handler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/coordinator/users", http.StatusSeeOther)
		return
	}

	email := normalize.Email(r.FormValue("email"))
	role := models.Role(normalize.Text(r.FormValue("userRole")))
	if email == "" || !role.Valid() {
		http.Redirect(w, r, usersURL("Choose a valid role."), http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.UpdateUserRole(ctx, auth.BearerToken(r), email, role); err != nil {
		h.failGateway(w, r, err, "role update failed",
			"Could not update the role.", "/coordinator/users")
		return
	}

	h.Log.Info("role updated",
		zap.String("email", email),
		zap.String("role", string(role)))
	http.Redirect(w, r, usersURL("Role updated."), http.StatusSeeOther)
}

// HandleDeleteUser removes an account entirely.
func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))
	if id == "" {
		http.Redirect(w, r, "/coordinator/users", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.DeleteUser(ctx, auth.BearerToken(r), id); err != nil {
		h.failGateway(w, r, err, "user delete failed",
			"Could not remove the user.", "/coordinator/users")
		return
	}

	h.Log.Info("user removed", zap.String("id", id))
	http.Redirect(w, r, usersURL("User removed."), http.StatusSeeOther)
}

func usersURL(notice string) string {
	return "/coordinator/users?notice=" + url.QueryEscape(notice)
}
