package testutil

import (
	"testing"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/store/localstore"
	"github.com/dalemusser/reviewhub/internal/app/store/submissions"
	"github.com/dalemusser/reviewhub/internal/domain/models"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Stores bundles the in-memory-backed stores used by handler tests.
type Stores struct {
	Local       *localstore.Store
	Directory   *directory.Store
	Submissions *submissions.Store
}

// NewStores builds a full store stack over an in-memory filesystem.
func NewStores(t *testing.T) *Stores {
	t.Helper()

	ls, err := localstore.New(afero.NewMemMapFs(), "data", zap.NewNop())
	if err != nil {
		t.Fatalf("localstore.New failed: %v", err)
	}
	dir, err := directory.New(ls, zap.NewNop())
	if err != nil {
		t.Fatalf("directory.New failed: %v", err)
	}
	subs, err := submissions.New(ls, zap.NewNop())
	if err != nil {
		t.Fatalf("submissions.New failed: %v", err)
	}
	return &Stores{Local: ls, Directory: dir, Submissions: subs}
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	stores *Stores
	t      *testing.T
}

// NewFixtures creates a new Fixtures instance over the given stores.
func NewFixtures(t *testing.T, stores *Stores) *Fixtures {
	t.Helper()
	return &Fixtures{stores: stores, t: t}
}

// CreateTeam creates a test team with the given name and instance label.
func (f *Fixtures) CreateTeam(name, instance string) models.Team {
	f.t.Helper()

	team, err := f.stores.Directory.CreateTeam(directory.TeamInput{
		Name:        name,
		Description: "Test team",
		Instance:    instance,
		Color:       "bg-blue-500",
	})
	if err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}
	return team
}

// CreateUser creates an active test user assigned to teamID (may be empty).
func (f *Fixtures) CreateUser(name, email, role, teamID string) models.User {
	f.t.Helper()

	user, err := f.stores.Directory.CreateUser(directory.UserInput{
		Name:     name,
		Email:    email,
		Password: "password123",
		Role:     role,
		TeamID:   teamID,
	})
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreatePrompt creates a pending prompt submission for the given submitter.
func (f *Fixtures) CreatePrompt(by submissions.Submitter, title string) models.Submission {
	f.t.Helper()

	sub, err := f.stores.Submissions.SubmitPrompt(by, submissions.PromptInput{
		Title:   title,
		Content: "test content",
	})
	if err != nil {
		f.t.Fatalf("failed to create test submission: %v", err)
	}
	return sub
}
