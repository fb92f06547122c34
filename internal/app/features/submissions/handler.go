// internal/app/features/submissions/handler.go

// Package submissions is the review-workflow surface: signed-in users
// submit prompts and presentation/workbook files, admins list and review
// them. Every submission starts pending and carries a snapshot of the
// submitter's identity taken at submission time.
package submissions

import (
	"github.com/dalemusser/reviewhub/internal/app/store/submissions"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Submissions.
type Handler struct {
	Submissions *submissions.Store
	Log         *zap.Logger
}

// NewHandler constructs a Submissions handler bound to the store.
func NewHandler(subs *submissions.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Submissions: subs,
		Log:         logger,
	}
}
