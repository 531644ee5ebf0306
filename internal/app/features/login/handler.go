// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/inputval"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Gateway    *gateway.Client
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(gw *gateway.Client, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Gateway:    gw,
		SessionMgr: sessionMgr,
		Log:        logger,
	}
}

type loginPageData struct {
	viewdata.BaseVM
	Email  string
	Notice string
}

// credentialsInput defines validation rules for the login form.
type credentialsInput struct {
	Email    string `validate:"required,email" label:"Email"`
	Password string `validate:"required" label:"Password"`
}

// ServeLogin renders the login form. A user who is already signed in is
// sent to their landing page instead.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if role, _, _, ok := authz.UserCtx(r); ok {
		http.Redirect(w, r, authz.LandingPath(role), http.StatusSeeOther)
		return
	}

	data := loginPageData{
		BaseVM: viewdata.NewBaseVM(r, "Login"),
		Notice: normalize.Text(r.URL.Query().Get("notice")),
	}
	templates.Render(w, r, "login", data)
}

// HandleLogin checks credentials with the internship service and, on
// success, writes token+identity into the session in one save and
// redirects to the landing page for the user's role (the post-login
// call site of LandingPath).
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.reRender(w, r, "", "Bad request.")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")

	input := credentialsInput{Email: email, Password: password}
	if result := inputval.Validate(input); result.HasErrors() {
		h.reRender(w, r, email, result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Gateway.Login(ctx, email, password)
	if err != nil {
		ge := gateway.AsError(err)
		h.Log.Info("login rejected", zap.String("email", email), zap.String("kind", string(ge.Kind)))
		h.reRender(w, r, email, ge.Message)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, res.Token, res.User); err != nil {
		// Nothing was persisted; the user can simply try again.
		h.Log.Error("session write failed", zap.Error(err))
		h.reRender(w, r, email, "Could not start a session. Please try again.")
		return
	}

	http.Redirect(w, r, authz.LandingPath(string(res.User.Role)), http.StatusSeeOther)
}

func (h *Handler) reRender(w http.ResponseWriter, r *http.Request, email, msg string) {
	data := loginPageData{
		BaseVM: viewdata.NewBaseVM(r, "Login"),
		Email:  email,
	}
	data.SetError(msg)
	templates.Render(w, r, "login", data)
}
