// internal/app/features/chat/routes.go
package chat

import (
	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the simulated assistant (mounted under
// /chat).
func Routes(h *Handler, sessions *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessions.RequireSignedIn)

	r.Post("/", h.ServeSend)
	r.Get("/history", h.ServeHistory)

	return r
}
