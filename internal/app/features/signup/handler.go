// internal/app/features/signup/handler.go
package signup

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/inputval"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

func NewHandler(gw *gateway.Client, logger *zap.Logger) *Handler {
	return &Handler{Gateway: gw, Log: logger}
}

type signupPageData struct {
	viewdata.BaseVM
	FullName string
	Email    string
}

// signupInput defines validation rules for the registration form.
type signupInput struct {
	FullName string `validate:"required,max=100" label:"Full name"`
	Email    string `validate:"required,email" label:"Email"`
	Password string `validate:"required,min=8" label:"Password"`
}

// ServeSignup renders the registration form.
func (h *Handler) ServeSignup(w http.ResponseWriter, r *http.Request) {
	if role, _, _, ok := authz.UserCtx(r); ok {
		http.Redirect(w, r, authz.LandingPath(role), http.StatusSeeOther)
		return
	}

	data := signupPageData{BaseVM: viewdata.NewBaseVM(r, "Sign up")}
	templates.Render(w, r, "signup", data)
}

// HandleSignup registers the account with the internship service. New
// accounts start with the "User" role and land on the pending-review page
// after their first login.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.reRender(w, r, "", "", "Bad request.")
		return
	}

	fullName := normalize.Name(r.FormValue("fullName"))
	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")

	input := signupInput{FullName: fullName, Email: email, Password: password}
	if result := inputval.Validate(input); result.HasErrors() {
		h.reRender(w, r, fullName, email, result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.Signup(ctx, fullName, email, password); err != nil {
		ge := gateway.AsError(err)
		h.Log.Info("signup rejected", zap.String("email", email), zap.String("kind", string(ge.Kind)))
		h.reRender(w, r, fullName, email, ge.Message)
		return
	}

	notice := url.QueryEscape("Account created. Please log in.")
	http.Redirect(w, r, "/login?notice="+notice, http.StatusSeeOther)
}

func (h *Handler) reRender(w http.ResponseWriter, r *http.Request, fullName, email, msg string) {
	data := signupPageData{
		BaseVM:   viewdata.NewBaseVM(r, "Sign up"),
		FullName: fullName,
		Email:    email,
	}
	data.SetError(msg)
	templates.Render(w, r, "signup", data)
}
