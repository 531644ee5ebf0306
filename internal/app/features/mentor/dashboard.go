// internal/app/features/mentor/dashboard.go
package mentor

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

type dashboardData struct {
	viewdata.BaseVM
	Groups []models.MentorGroup
}

// ServeDashboard lists the mentor's groups with their members, linking
// each one to its task-assignment and progress screens.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Gateway.MentorGroupDetails(ctx, auth.BearerToken(r))
	if err != nil {
		h.failGateway(w, r, err, "mentor group fetch failed",
			"Could not load your groups.", "/mentor")
		return
	}

	data := dashboardData{
		BaseVM: viewdata.NewBaseVM(r, "Mentor Dashboard"),
		Groups: groups,
	}
	if notice := normalize.Text(r.URL.Query().Get("notice")); notice != "" {
		data.SetSuccess(notice)
	}
	templates.Render(w, r, "mentor_dashboard", data)
}
