// internal/app/store/submissions/submissionstore.go

// Package submissions owns the review-item collection.
//
// Every mutation persists the whole collection to the local store under one
// lock. Status is the only state machine here: pending → approved or denied,
// and a reviewed record may be re-reviewed (approved ↔ denied) but can never
// return to pending.
package submissions

import (
	"errors"
	"sync"
	"time"

	"github.com/dalemusser/reviewhub/internal/app/store/localstore"
	"github.com/dalemusser/reviewhub/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Storage key in the local store.
const submissionsKey = "submissions"

var (
	ErrNotFound        = errors.New("submission not found")
	ErrInvalidDecision = errors.New("decision must be approved or denied")
)

// Submitter is the identity snapshot attached to new submissions.
type Submitter struct {
	ID   string
	Name string
	Team string
}

// PromptInput carries the fields of a prompt submission.
type PromptInput struct {
	Title            string
	Content          string
	ExpectedResponse string
	TeamDocuments    string
}

// FileInput carries the metadata of a file submission.
type FileInput struct {
	Type        string // pptx | xlsx
	Title       string
	FileName    string
	FileSize    int64
	Description string
}

// Store is the submissions collection.
type Store struct {
	ls  *localstore.Store
	log *zap.Logger

	mu   sync.RWMutex
	subs []models.Submission
}

// New loads the persisted collection (absent or corrupt content yields an
// empty collection; see localstore).
func New(ls *localstore.Store, logger *zap.Logger) (*Store, error) {
	s := &Store{ls: ls, log: logger}
	if _, err := ls.Load(submissionsKey, &s.subs); err != nil {
		return nil, err
	}
	return s, nil
}

// SubmitPrompt appends a pending prompt submission and returns the created
// record. The submitter's name and team are captured as snapshots.
func (s *Store) SubmitPrompt(by Submitter, in PromptInput) (models.Submission, error) {
	sub := models.Submission{
		ID:               uuid.NewString(),
		Type:             models.SubmissionPrompt,
		Title:            in.Title,
		Content:          in.Content,
		ExpectedResponse: in.ExpectedResponse,
		TeamDocuments:    in.TeamDocuments,
	}
	return s.append(by, sub)
}

// SubmitFile appends a pending file-metadata submission and returns the
// created record.
func (s *Store) SubmitFile(by Submitter, in FileInput) (models.Submission, error) {
	sub := models.Submission{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Title:       in.Title,
		FileName:    in.FileName,
		FileSize:    in.FileSize,
		Description: in.Description,
	}
	return s.append(by, sub)
}

func (s *Store) append(by Submitter, sub models.Submission) (models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub.SubmitterID = by.ID
	sub.SubmittedBy = by.Name
	sub.Team = by.Team
	sub.Status = models.SubmissionPending
	sub.SubmittedAt = time.Now().UTC()

	s.subs = append(s.subs, sub)
	if err := s.persistLocked(); err != nil {
		return models.Submission{}, err
	}
	return sub, nil
}

// Review transitions a submission to approved or denied, records the admin
// comment, and stamps the review time. A miss is surfaced as ErrNotFound
// rather than silently ignored. Re-reviewing an already reviewed record is
// allowed; moving any record back to pending is not.
func (s *Store) Review(id, decision, comment string) (models.Submission, error) {
	if decision != models.SubmissionApproved && decision != models.SubmissionDenied {
		return models.Submission{}, ErrInvalidDecision
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subs {
		if s.subs[i].ID != id {
			continue
		}
		now := time.Now().UTC()
		s.subs[i].Status = decision
		s.subs[i].AdminComment = comment
		s.subs[i].ReviewedAt = &now
		if err := s.persistLocked(); err != nil {
			return models.Submission{}, err
		}
		s.log.Info("submission reviewed",
			zap.String("submission_id", id),
			zap.String("decision", decision))
		return s.subs[i], nil
	}
	return models.Submission{}, ErrNotFound
}

// GetByID returns the submission with the given id.
func (s *Store) GetByID(id string) (models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.subs {
		if sub.ID == id {
			return sub, nil
		}
	}
	return models.Submission{}, ErrNotFound
}

// ListBySubmitter returns every submission created by the given user, by
// stable submitter id. An empty id returns an empty list, never the whole
// collection.
func (s *Store) ListBySubmitter(userID string) []models.Submission {
	if userID == "" {
		return []models.Submission{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Submission{}
	for _, sub := range s.subs {
		if sub.SubmitterID == userID {
			out = append(out, sub)
		}
	}
	return out
}

// ListPending returns every submission still awaiting review.
func (s *Store) ListPending() []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Submission{}
	for _, sub := range s.subs {
		if sub.Status == models.SubmissionPending {
			out = append(out, sub)
		}
	}
	return out
}

// ListAll returns a copy of the full collection.
func (s *Store) ListAll() []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Submission, len(s.subs))
	copy(out, s.subs)
	return out
}

func (s *Store) persistLocked() error {
	return s.ls.Save(submissionsKey, s.subs)
}
