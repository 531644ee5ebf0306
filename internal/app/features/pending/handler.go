// internal/app/features/pending/handler.go
package pending

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the landing page for accounts still carrying the default
// "User" role: registered, but waiting for a coordinator to assign
// Mentor or Intern.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServePending renders the awaiting-review page.
func (h *Handler) ServePending(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Account pending"),
	}
	templates.Render(w, r, "pending", data)
}
