// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns an admin-only subrouter for account management (mounted
// under /users).
func Routes(h *Handler, sessions *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessions.RequireSignedIn)
	r.Use(sessions.RequireRole("admin"))

	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Get("/{userID}", h.ServeView)
	r.Put("/{userID}", h.ServeEdit)
	r.Delete("/{userID}", h.ServeDelete)
	r.Post("/{userID}/team", h.ServeAssign)
	r.Delete("/{userID}/team", h.ServeUnassign)

	return r
}
