// internal/app/features/intern/routes.go
package intern

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Everything under /intern is intern-only. A signed-in user with a
	// different role is rerouted to their own dashboard by the guard.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("Intern"))

		// MY TASKS
		pr.Get("/", h.ServeTasks)
		pr.Post("/tasks/{batchID}/complete", h.HandleCompleteTask)
	})

	return r
}
