// internal/app/features/submissions/submit.go
package submissions

import (
	"net/http"
	"strings"

	"github.com/dalemusser/reviewhub/internal/app/store/submissions"
	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/dalemusser/reviewhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"github.com/dalemusser/reviewhub/internal/domain/models"
	"go.uber.org/zap"
)

// maxDeclaredFileSize caps the metadata a submission may declare. File
// bytes never travel through this API, but an absurd declared size would
// still mislead reviewers.
const maxDeclaredFileSize = 50 << 20 // 50 MiB

// submitterFrom snapshots the signed-in identity for attachment to a new
// submission.
func submitterFrom(u *auth.SessionUser) submissions.Submitter {
	return submissions.Submitter{
		ID:   u.ID,
		Name: u.Name,
		Team: u.Team,
	}
}

// ServeSubmitPrompt handles POST /submissions/prompts.
//
// Free-text fields are stripped to plain text before storage; prompts are
// rendered back to other users and admins.
func (h *Handler) ServeSubmitPrompt(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w, "sign in required")
		return
	}

	var in promptInput
	if err := respond.Decode(r, &in); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		respond.BadRequest(w, "title and content are required")
		return
	}

	sub, err := h.Submissions.SubmitPrompt(submitterFrom(user), submissions.PromptInput{
		Title:            htmlsanitize.Text(in.Title),
		Content:          htmlsanitize.Text(in.Content),
		ExpectedResponse: htmlsanitize.Text(in.ExpectedResponse),
		TeamDocuments:    htmlsanitize.Text(in.TeamDocuments),
	})
	if err != nil {
		h.Log.Error("submit prompt failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	h.Log.Info("prompt submitted",
		zap.String("submission_id", sub.ID),
		zap.String("submitter_id", sub.SubmitterID))
	respond.JSON(w, http.StatusCreated, newSubmissionView(sub))
}

// ServeSubmitFile handles POST /submissions/files. Accepts presentation
// (pptx) and workbook (xlsx) metadata only.
func (h *Handler) ServeSubmitFile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w, "sign in required")
		return
	}

	var in fileInput
	if err := respond.Decode(r, &in); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}
	if in.Type != models.SubmissionPPTX && in.Type != models.SubmissionXLSX {
		respond.BadRequest(w, "type must be pptx or xlsx")
		return
	}
	if strings.TrimSpace(in.FileName) == "" {
		respond.BadRequest(w, "fileName is required")
		return
	}
	if in.FileSize < 0 || in.FileSize > maxDeclaredFileSize {
		respond.BadRequest(w, "fileSize must be between 0 and 50 MiB")
		return
	}

	sub, err := h.Submissions.SubmitFile(submitterFrom(user), submissions.FileInput{
		Type:        in.Type,
		Title:       htmlsanitize.Text(in.Title),
		FileName:    htmlsanitize.Text(in.FileName),
		FileSize:    in.FileSize,
		Description: htmlsanitize.Text(in.Description),
	})
	if err != nil {
		h.Log.Error("submit file failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	h.Log.Info("file submitted",
		zap.String("submission_id", sub.ID),
		zap.String("type", sub.Type),
		zap.String("submitter_id", sub.SubmitterID))
	respond.JSON(w, http.StatusCreated, newSubmissionView(sub))
}
