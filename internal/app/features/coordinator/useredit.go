// internal/app/features/coordinator/useredit.go
package coordinator

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/inputval"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// userEditInput defines validation rules for the editable account fields.
type userEditInput struct {
	FullName string `validate:"required,max=120" label:"Name"`
	Email    string `validate:"required,email" label:"Email"`
}

type userEditData struct {
	viewdata.BaseVM
	User  models.UserSummary
	Roles []models.Role
}

// ServeEditUser renders the account-edit form prefilled from the current
// record. An account that vanished between list and click goes back to
// the table with a notice.
func (h *Handler) ServeEditUser(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.findUser(ctx, id)
	if err != nil {
		h.failGateway(w, r, err, "user fetch failed",
			"Could not load the account.", "/coordinator/users")
		return
	}
	if user == nil {
		http.Redirect(w, r, usersURL("That account no longer exists."), http.StatusSeeOther)
		return
	}

	h.renderUserEdit(w, r, *user, "")
}

// HandleEditUser replaces an account's editable fields (name, email,
// role) through the user-management endpoint.
func (h *Handler) HandleEditUser(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/coordinator/users", http.StatusSeeOther)
		return
	}

	user := models.UserSummary{
		ID:       id,
		FullName: normalize.Text(r.FormValue("fullName")),
		Email:    normalize.Email(r.FormValue("email")),
		Role:     models.Role(normalize.Text(r.FormValue("userRole"))),
	}

	input := userEditInput{FullName: user.FullName, Email: user.Email}
	if result := inputval.Validate(input); result.HasErrors() {
		h.renderUserEdit(w, r, user, result.First())
		return
	}
	if !user.Role.Valid() {
		h.renderUserEdit(w, r, user, "Choose a valid role.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.UpdateUser(ctx, auth.BearerToken(r), user); err != nil {
		h.failGateway(w, r, err, "user update failed",
			"Could not save the account.", "/coordinator/users")
		return
	}

	h.Log.Info("user updated",
		zap.String("id", user.ID),
		zap.String("role", string(user.Role)))
	http.Redirect(w, r, usersURL("User updated."), http.StatusSeeOther)
}

// findUser scans the user list for one record; (nil, nil) when absent.
func (h *Handler) findUser(ctx context.Context, id string) (*models.UserSummary, error) {
	users, err := h.Gateway.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (h *Handler) renderUserEdit(w http.ResponseWriter, r *http.Request, user models.UserSummary, errMsg string) {
	data := userEditData{
		BaseVM: viewdata.NewBaseVM(r, "Edit User"),
		User:   user,
		Roles:  models.Roles,
	}
	if errMsg != "" {
		data.SetError(errMsg)
	}
	templates.Render(w, r, "user_edit", data)
}
