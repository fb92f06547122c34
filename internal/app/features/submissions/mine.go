// internal/app/features/submissions/mine.go
package submissions

import (
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
)

// ServeMine handles GET /submissions/mine. Matching is by submitter id, so
// renaming an account never detaches its history.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w, "sign in required")
		return
	}
	respond.JSON(w, http.StatusOK, newSubmissionViews(h.Submissions.ListBySubmitter(user.ID)))
}
