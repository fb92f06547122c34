// internal/app/features/submissions/review.go
package submissions

import (
	"errors"
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/store/submissions"
	"github.com/dalemusser/reviewhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeListAll handles GET /submissions.
// Authorization: RequireRole("admin") middleware in routes.go ensures only
// admins reach this handler.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, newSubmissionViews(h.Submissions.ListAll()))
}

// ServeListPending handles GET /submissions/pending.
func (h *Handler) ServeListPending(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, newSubmissionViews(h.Submissions.ListPending()))
}

// ServeView handles GET /submissions/{submissionID}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "submissionID")

	sub, err := h.Submissions.GetByID(id)
	if err != nil {
		if errors.Is(err, submissions.ErrNotFound) {
			respond.NotFound(w, "submission not found")
			return
		}
		h.Log.Error("load submission failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.JSON(w, http.StatusOK, newSubmissionView(sub))
}

// ServeReview handles POST /submissions/{submissionID}/review. The decision
// must be approved or denied; a reviewed record may be re-reviewed but never
// returned to pending.
func (h *Handler) ServeReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "submissionID")

	var in reviewInput
	if err := respond.Decode(r, &in); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	sub, err := h.Submissions.Review(id, in.Decision, htmlsanitize.Text(in.Comment))
	if err != nil {
		switch {
		case errors.Is(err, submissions.ErrInvalidDecision):
			respond.BadRequest(w, "decision must be approved or denied")
		case errors.Is(err, submissions.ErrNotFound):
			respond.NotFound(w, "submission not found")
		default:
			h.Log.Error("review failed", zap.Error(err))
			respond.Internal(w)
		}
		return
	}
	respond.JSON(w, http.StatusOK, newSubmissionView(sub))
}
