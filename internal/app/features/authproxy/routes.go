// internal/app/features/authproxy/routes.go
package authproxy

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the delegated-auth endpoints (mounted
// under /auth).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/refresh", h.HandleRefresh)
	r.Get("/login", h.HandleLogin)
	r.Get("/logout", h.HandleLogout)
	return r
}
