// internal/app/features/submissions/types.go
package submissions

import (
	"time"

	"github.com/dalemusser/reviewhub/internal/domain/models"
)

// promptInput is the request body for POST /submissions/prompts.
type promptInput struct {
	Title            string `json:"title"`
	Content          string `json:"content"`
	ExpectedResponse string `json:"expectedResponse"`
	TeamDocuments    string `json:"teamDocuments"`
}

// fileInput is the request body for POST /submissions/files. Only metadata
// travels here; file bytes are out of scope.
type fileInput struct {
	Type        string `json:"type"` // pptx | xlsx
	Title       string `json:"title"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	Description string `json:"description"`
}

// reviewInput is the request body for POST /submissions/{submissionID}/review.
type reviewInput struct {
	Decision string `json:"decision"` // approved | denied
	Comment  string `json:"comment"`
}

// submissionView is a single submission as returned to clients.
type submissionView struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	Content          string     `json:"content,omitempty"`
	ExpectedResponse string     `json:"expectedResponse,omitempty"`
	TeamDocuments    string     `json:"teamDocuments,omitempty"`
	FileName         string     `json:"fileName,omitempty"`
	FileSize         int64      `json:"fileSize,omitempty"`
	Description      string     `json:"description,omitempty"`
	SubmitterID      string     `json:"submitterId"`
	SubmittedBy      string     `json:"submittedBy"`
	Team             string     `json:"team,omitempty"`
	Status           string     `json:"status"`
	AdminComment     string     `json:"adminComment,omitempty"`
	SubmittedAt      time.Time  `json:"submittedAt"`
	ReviewedAt       *time.Time `json:"reviewedAt,omitempty"`
}

func newSubmissionView(s models.Submission) submissionView {
	return submissionView{
		ID:               s.ID,
		Type:             s.Type,
		Title:            s.Title,
		Content:          s.Content,
		ExpectedResponse: s.ExpectedResponse,
		TeamDocuments:    s.TeamDocuments,
		FileName:         s.FileName,
		FileSize:         s.FileSize,
		Description:      s.Description,
		SubmitterID:      s.SubmitterID,
		SubmittedBy:      s.SubmittedBy,
		Team:             s.Team,
		Status:           s.Status,
		AdminComment:     s.AdminComment,
		SubmittedAt:      s.SubmittedAt,
		ReviewedAt:       s.ReviewedAt,
	}
}

func newSubmissionViews(subs []models.Submission) []submissionView {
	views := make([]submissionView, 0, len(subs))
	for _, s := range subs {
		views = append(views, newSubmissionView(s))
	}
	return views
}
