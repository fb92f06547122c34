// internal/app/features/submissions/routes.go
package submissions

import (
	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the review workflow (mounted under
// /submissions). Submitting and listing one's own history require a
// session; listing everything and reviewing are admin-only.
func Routes(h *Handler, sessions *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sessions.RequireSignedIn)

	r.Post("/prompts", h.ServeSubmitPrompt)
	r.Post("/files", h.ServeSubmitFile)
	r.Get("/mine", h.ServeMine)

	r.Group(func(admin chi.Router) {
		admin.Use(sessions.RequireRole("admin"))
		admin.Get("/", h.ServeListAll)
		admin.Get("/pending", h.ServeListPending)
		admin.Get("/{submissionID}", h.ServeView)
		admin.Post("/{submissionID}/review", h.ServeReview)
	})

	return r
}
