// internal/app/features/teams/routes.go
package teams

import (
	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns an admin-only subrouter for team management (mounted
// under /teams).
func Routes(h *Handler, sessions *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessions.RequireSignedIn)
	r.Use(sessions.RequireRole("admin"))

	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Get("/{teamID}", h.ServeView)
	r.Put("/{teamID}", h.ServeEdit)
	r.Delete("/{teamID}", h.ServeDelete)
	r.Get("/{teamID}/users", h.ServeMembers)

	return r
}
