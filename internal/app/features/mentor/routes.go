// internal/app/features/mentor/routes.go
package mentor

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Everything under /mentor is mentor-only. A signed-in user with a
	// different role is rerouted to their own dashboard by the guard.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("Mentor"))

		// GROUP OVERVIEW
		pr.Get("/", h.ServeDashboard)

		// TASK ASSIGNMENT
		pr.Get("/groups/{id}/tasks", h.ServeAssignTasks)
		pr.Post("/groups/{id}/tasks", h.HandleAssignTasks)

		// PROGRESS
		pr.Get("/groups/{id}/progress", h.ServeProgress)
	})

	return r
}
