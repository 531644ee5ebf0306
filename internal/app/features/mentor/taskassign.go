// internal/app/features/mentor/taskassign.go
package mentor

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/normalize"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// taskForm carries the assignment form state across renders.
type taskForm struct {
	TaskCount int
	// Descriptions has exactly TaskCount entries; blanks are "".
	Descriptions []string
}

// taskSlot pairs one description field with its 1-based label.
type taskSlot struct {
	Index       int
	Number      int
	Description string
}

type taskFormData struct {
	viewdata.BaseVM
	Group      models.MentorGroup
	Form       taskForm
	Slots      []taskSlot
	TaskCounts []int
}

// parseTaskForm reads the declared count and exactly that many
// description fields. Lowering the count drops the trailing entries.
func parseTaskForm(r *http.Request) taskForm {
	f := taskForm{TaskCount: parseTaskCount(r.FormValue("taskCount"))}
	f.Descriptions = make([]string, f.TaskCount)
	for i := 0; i < f.TaskCount; i++ {
		f.Descriptions[i] = normalize.Text(r.FormValue("task" + strconv.Itoa(i)))
	}
	return f
}

func parseTaskCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < models.MinTasksPerBatch {
		return models.MinTasksPerBatch
	}
	if n > models.MaxTasksPerBatch {
		return models.MaxTasksPerBatch
	}
	return n
}

func taskCounts() []int {
	counts := make([]int, 0, models.MaxTasksPerBatch-models.MinTasksPerBatch+1)
	for n := models.MinTasksPerBatch; n <= models.MaxTasksPerBatch; n++ {
		counts = append(counts, n)
	}
	return counts
}

// ServeAssignTasks renders a fresh assignment form for one group.
func (h *Handler) ServeAssignTasks(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.findGroup(ctx, auth.BearerToken(r), id)
	if err != nil {
		h.failGateway(w, r, err, "mentor group fetch failed",
			"Could not load the group.", "/mentor")
		return
	}
	if group == nil {
		http.Redirect(w, r, "/mentor", http.StatusSeeOther)
		return
	}

	form := taskForm{
		TaskCount:    models.MinTasksPerBatch,
		Descriptions: make([]string, models.MinTasksPerBatch),
	}
	h.renderTaskForm(w, r, *group, form, "")
}

// HandleAssignTasks processes the assignment form.
//
// The form posts back to itself when the mentor changes the task count
// (action=refresh); that pass only re-renders with the new number of
// description fields. A real submission goes through only when every
// declared slot holds a description; the batch is sent with every task
// incomplete, and success returns to the refetched dashboard.
func (h *Handler) HandleAssignTasks(w http.ResponseWriter, r *http.Request) {
	id := normalize.ID(chi.URLParam(r, "id"))
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogServerError(w, r, "task form parse failed", err,
			"Could not read the form.", "/mentor")
		return
	}

	form := parseTaskForm(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.findGroup(ctx, auth.BearerToken(r), id)
	if err != nil {
		h.failGateway(w, r, err, "mentor group fetch failed",
			"Could not load the group.", "/mentor")
		return
	}
	if group == nil {
		http.Redirect(w, r, "/mentor", http.StatusSeeOther)
		return
	}

	if r.FormValue("action") == "refresh" {
		h.renderTaskForm(w, r, *group, form, "")
		return
	}

	tasks := make([]models.Task, 0, form.TaskCount)
	for _, desc := range form.Descriptions {
		if desc == "" {
			h.renderTaskForm(w, r, *group, form,
				"Describe every task before assigning the batch.")
			return
		}
		tasks = append(tasks, models.Task{Description: desc, IsComplete: false})
	}

	memberIDs := make([]string, 0, len(group.Members))
	for _, m := range group.Members {
		memberIDs = append(memberIDs, m.ID)
	}

	// The wire groupId is the coordinator-assigned identifier, not the
	// service record id.
	if err := h.Gateway.AssignTasks(ctx, auth.BearerToken(r), group.GroupID, memberIDs, tasks); err != nil {
		if gateway.IsAuth(err) {
			h.failGateway(w, r, err, "task assignment rejected", "", "/mentor")
			return
		}
		ge := gateway.AsError(err)
		msg := "Could not assign the tasks."
		if ge.Kind == gateway.KindValidation && ge.Message != "" {
			msg = ge.Message
		}
		h.renderTaskForm(w, r, *group, form, msg)
		return
	}

	h.Log.Info("tasks assigned",
		zap.String("groupId", group.GroupID),
		zap.Int("count", len(tasks)))
	http.Redirect(w, r,
		"/mentor?notice="+url.QueryEscape("Tasks assigned to "+group.GroupID+"."),
		http.StatusSeeOther)
}

func (h *Handler) renderTaskForm(w http.ResponseWriter, r *http.Request, group models.MentorGroup, form taskForm, errMsg string) {
	slots := make([]taskSlot, form.TaskCount)
	for i := 0; i < form.TaskCount; i++ {
		slots[i] = taskSlot{Index: i, Number: i + 1, Description: form.Descriptions[i]}
	}

	data := taskFormData{
		BaseVM:     viewdata.NewBaseVM(r, "Assign Tasks"),
		Group:      group,
		Form:       form,
		Slots:      slots,
		TaskCounts: taskCounts(),
	}
	if errMsg != "" {
		data.SetError(errMsg)
	}
	templates.Render(w, r, "mentor_tasks", data)
}
