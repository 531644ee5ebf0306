// internal/app/features/intern/tasks.go
package intern

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
	"go.uber.org/zap"
)

type tasksData struct {
	viewdata.BaseVM
	Batches []models.TaskBatch
}

// ServeTasks lists the intern's assigned tasks grouped by batch, each
// open task with its own completion button. The list is fetched fresh on
// every visit.
func (h *Handler) ServeTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	batches, err := h.Gateway.MyTasks(ctx, auth.BearerToken(r))
	if err != nil {
		h.failGateway(w, r, err, "task fetch failed",
			"Could not load your tasks.", "/intern")
		return
	}

	data := tasksData{
		BaseVM:  viewdata.NewBaseVM(r, "My Tasks"),
		Batches: batches,
	}
	if notice := normalize.Text(r.URL.Query().Get("notice")); notice != "" {
		data.SetSuccess(notice)
	}
	templates.Render(w, r, "intern_tasks", data)
}

// HandleCompleteTask marks one task done and redirects back to the list,
// which refetches the stored state rather than patching it locally. One
// task per submission; finishing a batch is just finishing its tasks one
// by one.
func (h *Handler) HandleCompleteTask(w http.ResponseWriter, r *http.Request) {
	batchID := normalize.ID(chi.URLParam(r, "batchID"))
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/intern", http.StatusSeeOther)
		return
	}

	taskID := normalize.ID(r.FormValue("taskId"))
	if batchID == "" || taskID == "" {
		http.Redirect(w, r, "/intern", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Gateway.CompleteTasks(ctx, auth.BearerToken(r), batchID, []string{taskID}); err != nil {
		h.failGateway(w, r, err, "task completion failed",
			"Could not mark the task complete.", "/intern")
		return
	}

	h.Log.Info("task completed",
		zap.String("batchId", batchID),
		zap.String("taskId", taskID))
	http.Redirect(w, r, "/intern?notice=Task+marked+complete.", http.StatusSeeOther)
}
