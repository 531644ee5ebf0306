// internal/app/features/coordinator/dashboard.go
package coordinator

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeDashboard renders the coordinator shell: the navigation hub for
// user management, group assignment, and group management.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Coordinator Dashboard"),
	}
	templates.Render(w, r, "coordinator_dashboard", data)
}
