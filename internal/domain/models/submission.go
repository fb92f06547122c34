// internal/domain/models/submission.go
package models

import "time"

// Submission types.
const (
	SubmissionPrompt = "prompt"
	SubmissionPPTX   = "pptx"
	SubmissionXLSX   = "xlsx"
)

// Submission statuses.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionDenied   = "denied"
)

// Submission is a user-created review item: either a prompt definition or
// uploaded-file metadata.
//
// SubmittedBy/Team are snapshots taken at submission time, not live
// references; renaming a user or team later does not rewrite history.
// SubmitterID is the stable key used to list a user's own submissions.
type Submission struct {
	ID    string `json:"id"`
	Type  string `json:"type"` // prompt | pptx | xlsx
	Title string `json:"title"`

	// Prompt payload.
	Content          string `json:"content,omitempty"`
	ExpectedResponse string `json:"expected_response,omitempty"`
	TeamDocuments    string `json:"team_documents,omitempty"`

	// File payload (metadata only; the file itself is not stored).
	FileName    string `json:"file_name,omitempty"`
	FileSize    int64  `json:"file_size,omitempty"`
	Description string `json:"description,omitempty"`

	SubmitterID string `json:"submitter_id"`
	SubmittedBy string `json:"submitted_by"`
	Team        string `json:"team"`

	Status       string     `json:"status"` // pending | approved | denied
	AdminComment string     `json:"admin_comment,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}

// IsFile reports whether the submission carries a file payload.
func (s Submission) IsFile() bool {
	return s.Type == SubmissionPPTX || s.Type == SubmissionXLSX
}
