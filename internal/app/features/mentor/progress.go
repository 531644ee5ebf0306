// internal/app/features/mentor/progress.go
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
	"github.com/go-chi/chi/v5"
)

// memberProgressView adds the derived display percentage to a member's
// raw counts.
type memberProgressView struct {
	models.MemberProgress
	Percent int
}

type progressData struct {
	viewdata.BaseVM
	Group   models.MentorGroup
	Members []memberProgressView
}

// ServeProgress renders the per-member completion report for one group.
// The snapshot is computed by the service on every visit; nothing is
// cached between requests.
func (h *Handler) ServeProgress(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	token := auth.BearerToken(r)

	group, err := h.findGroup(ctx, token, id)
	if err != nil {
		h.failGateway(w, r, err, "mentor group fetch failed",
			"Could not load the group.", "/mentor")
		return
	}
	if group == nil {
		http.Redirect(w, r, "/mentor", http.StatusSeeOther)
		return
	}

	snap, err := h.Gateway.CheckProgress(ctx, token, group.GroupID)
	if err != nil {
		h.failGateway(w, r, err, "progress fetch failed",
			"Could not load the progress report.", "/mentor")
		return
	}

	members := make([]memberProgressView, 0, len(snap.Members))
	for _, m := range snap.Members {
		members = append(members, memberProgressView{
			MemberProgress: m,
			Percent:        int(m.Percentage()),
		})
	}

	data := progressData{
		BaseVM:  viewdata.NewBaseVM(r, "Group Progress"),
		Group:   *group,
		Members: members,
	}
	templates.Render(w, r, "mentor_progress", data)
}
