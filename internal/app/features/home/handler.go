// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot shows the marketing landing page to visitors. An authenticated
// user never sees it: they are sent straight to their role's dashboard via
// the shared LandingPath mapping (the root-path call site).
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if role, _, _, ok := authz.UserCtx(r); ok {
		http.Redirect(w, r, authz.LandingPath(role), http.StatusSeeOther)
		return
	}

	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Welcome"),
	}

	templates.Render(w, r, "home", data)
}
