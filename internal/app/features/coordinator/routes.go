// internal/app/features/coordinator/routes.go
package coordinator

import (
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Everything under /coordinator is coordinator-only. A signed-in user
	// with another role is rerouted to their own dashboard by the guard.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("Coordinator"))

		// DASHBOARD SHELL
		pr.Get("/", h.ServeDashboard)

		// USER MANAGEMENT
		pr.Get("/users", h.ServeUsers)
		pr.Post("/users/{id}/role", h.HandleUpdateRole)
		pr.Get("/users/{id}/edit", h.ServeEditUser)
		pr.Post("/users/{id}/edit", h.HandleEditUser)
		pr.Post("/users/{id}/delete", h.HandleDeleteUser)

		// ROLE ASSIGNMENTS
		pr.Get("/roles", h.ServeRoleAssignments)
		pr.Post("/roles/{id}/delete", h.HandleDeleteRoleAssignment)

		// GROUP ASSIGNMENT
		pr.Get("/groups/new", h.ServeNewGroup)
		pr.Post("/groups", h.HandleCreateGroup)

		// GROUP MANAGEMENT
		pr.Get("/groups", h.ServeGroupsList)
		pr.Get("/groups/{id}/edit", h.ServeEditGroup)
		pr.Post("/groups/{id}/edit", h.HandleEditGroup)
		pr.Post("/groups/{id}/delete", h.HandleDeleteGroup)
	})

	return r
}
