// internal/app/features/coordinator/grouplist.go
package coordinator

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeGroupsList renders the group-management table. Mentor and member
// IDs are resolved to names through the user list so the table reads as
// people, not record IDs.
func (h *Handler) ServeGroupsList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	token := auth.BearerToken(r)

	groups, err := h.Gateway.ListGroups(ctx, token)
	if err != nil {
		h.failGateway(w, r, err, "group list fetch failed",
			"Could not load the groups.", "/coordinator")
		return
	}

	users, err := h.Gateway.ListUsers(ctx)
	if err != nil {
		h.failGateway(w, r, err, "user list fetch failed",
			"Could not load the groups.", "/coordinator")
		return
	}
	names := nameIndex(users)

	rows := make([]groupRow, 0, len(groups))
	for _, g := range groups {
		row := groupRow{Group: g, MentorName: names[g.MentorID]}
		if row.MentorName == "" {
			row.MentorName = g.MentorID
		}
		for _, id := range g.MemberIDs {
			name := names[id]
			if name == "" {
				name = id
			}
			row.MemberNames = append(row.MemberNames, name)
		}
		rows = append(rows, row)
	}

	data := groupsPageData{
		BaseVM: viewdata.NewBaseVM(r, "Manage Groups"),
		Groups: rows,
	}
	if notice := normalize.Text(r.URL.Query().Get("notice")); notice != "" {
		data.SetSuccess(notice)
	}
	templates.Render(w, r, "group_list", data)
}
