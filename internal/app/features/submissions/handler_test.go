package submissions_test

import (
	"net/http"
	"testing"

	feature "github.com/dalemusser/reviewhub/internal/app/features/submissions"
	store "github.com/dalemusser/reviewhub/internal/app/store/submissions"
	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/dalemusser/reviewhub/internal/testutil"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*testutil.Stores, http.Handler) {
	t.Helper()
	stores := testutil.NewStores(t)
	h := feature.NewHandler(stores.Submissions, zap.NewNop())
	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return stores, feature.Routes(h, sm)
}

type submissionView struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	FileName     string `json:"fileName"`
	FileSize     int64  `json:"fileSize"`
	SubmitterID  string `json:"submitterId"`
	SubmittedBy  string `json:"submittedBy"`
	Team         string `json:"team"`
	Status       string `json:"status"`
	AdminComment string `json:"adminComment"`
}

func TestServeSubmitPrompt_CreatesPendingWithSnapshot(t *testing.T) {
	_, router := newTestRouter(t)
	user := testutil.RegularUser()

	body := map[string]string{
		"title":   "Campaign tagline ideas",
		"content": "Generate five taglines for the spring campaign.",
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/prompts", body), user)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var got submissionView
	testutil.DecodeJSON(t, rec.Body, &got)
	if got.Status != "pending" {
		t.Errorf("status: got %q, want pending", got.Status)
	}
	if got.SubmitterID != user.ID || got.SubmittedBy != user.Name || got.Team != user.Team {
		t.Errorf("submitter snapshot mismatch: %+v", got)
	}
}

func TestServeSubmitPrompt_StripsMarkup(t *testing.T) {
	_, router := newTestRouter(t)

	body := map[string]string{
		"title":   "Tagline <script>alert(1)</script>",
		"content": "<b>bold</b> request",
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/prompts", body), testutil.RegularUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var got submissionView
	testutil.DecodeJSON(t, rec.Body, &got)
	if got.Title != "Tagline" {
		t.Errorf("title not stripped: %q", got.Title)
	}
	if got.Content != "bold request" {
		t.Errorf("content not stripped: %q", got.Content)
	}
}

func TestServeSubmitPrompt_MissingFields(t *testing.T) {
	_, router := newTestRouter(t)

	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/prompts", map[string]string{"title": "only a title"}), testutil.RegularUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeSubmitFile_AcceptsPPTXMetadata(t *testing.T) {
	_, router := newTestRouter(t)

	body := map[string]any{
		"type":        "pptx",
		"title":       "Q3 pitch deck",
		"fileName":    "pitch.pptx",
		"fileSize":    1048576,
		"description": "Quarterly pitch",
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/files", body), testutil.RegularUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var got submissionView
	testutil.DecodeJSON(t, rec.Body, &got)
	if got.Type != "pptx" || got.FileName != "pitch.pptx" || got.FileSize != 1048576 {
		t.Errorf("unexpected file view: %+v", got)
	}
	if got.Status != "pending" {
		t.Errorf("status: got %q, want pending", got.Status)
	}
}

func TestServeSubmitFile_RejectsUnknownType(t *testing.T) {
	_, router := newTestRouter(t)

	body := map[string]any{
		"type":     "exe",
		"fileName": "malware.exe",
		"fileSize": 10,
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/files", body), testutil.RegularUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeMine_MatchesBySubmitterID(t *testing.T) {
	stores, router := newTestRouter(t)
	user := testutil.RegularUser()
	other := testutil.RegularUser()

	mustSubmit(t, stores, store.Submitter{ID: user.ID, Name: user.Name, Team: user.Team}, "mine")
	mustSubmit(t, stores, store.Submitter{ID: other.ID, Name: user.Name, Team: user.Team}, "same name, different account")

	req := testutil.NewAuthenticatedRequest("GET", "/mine", user)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got []submissionView
	testutil.DecodeJSON(t, rec.Body, &got)
	if len(got) != 1 || got[0].Title != "mine" {
		t.Errorf("expected only the caller's submission, got %+v", got)
	}
}

func mustSubmit(t *testing.T, stores *testutil.Stores, by store.Submitter, title string) {
	t.Helper()
	if _, err := stores.Submissions.SubmitPrompt(by, store.PromptInput{Title: title, Content: "c"}); err != nil {
		t.Fatalf("SubmitPrompt failed: %v", err)
	}
}

func TestServeListPending_AdminOnly(t *testing.T) {
	_, router := newTestRouter(t)

	req := testutil.NewAuthenticatedRequest("GET", "/pending", testutil.RegularUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
}

func TestServeListPending_ExcludesReviewed(t *testing.T) {
	stores, router := newTestRouter(t)
	user := testutil.RegularUser()
	by := store.Submitter{ID: user.ID, Name: user.Name, Team: user.Team}

	kept, err := stores.Submissions.SubmitPrompt(by, store.PromptInput{Title: "still pending", Content: "c"})
	if err != nil {
		t.Fatalf("SubmitPrompt failed: %v", err)
	}
	reviewed, err := stores.Submissions.SubmitPrompt(by, store.PromptInput{Title: "already reviewed", Content: "c"})
	if err != nil {
		t.Fatalf("SubmitPrompt failed: %v", err)
	}
	if _, err := stores.Submissions.Review(reviewed.ID, "approved", ""); err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("GET", "/pending", testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	var got []submissionView
	testutil.DecodeJSON(t, rec.Body, &got)
	if len(got) != 1 || got[0].ID != kept.ID {
		t.Errorf("expected only the pending submission, got %+v", got)
	}
}

func TestServeReview_ApprovesWithComment(t *testing.T) {
	stores, router := newTestRouter(t)
	user := testutil.RegularUser()
	sub, err := stores.Submissions.SubmitPrompt(
		store.Submitter{ID: user.ID, Name: user.Name, Team: user.Team},
		store.PromptInput{Title: "t", Content: "c"},
	)
	if err != nil {
		t.Fatalf("SubmitPrompt failed: %v", err)
	}

	body := map[string]string{"decision": "approved", "comment": "Looks good"}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/"+sub.ID+"/review", body), testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got submissionView
	testutil.DecodeJSON(t, rec.Body, &got)
	if got.Status != "approved" || got.AdminComment != "Looks good" {
		t.Errorf("unexpected review result: %+v", got)
	}
}

func TestServeReview_RejectsPendingDecision(t *testing.T) {
	stores, router := newTestRouter(t)
	user := testutil.RegularUser()
	sub, err := stores.Submissions.SubmitPrompt(
		store.Submitter{ID: user.ID, Name: user.Name, Team: user.Team},
		store.PromptInput{Title: "t", Content: "c"},
	)
	if err != nil {
		t.Fatalf("SubmitPrompt failed: %v", err)
	}

	body := map[string]string{"decision": "pending"}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/"+sub.ID+"/review", body), testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeReview_UnknownSubmission(t *testing.T) {
	_, router := newTestRouter(t)

	body := map[string]string{"decision": "approved"}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/no-such-id/review", body), testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestRoutes_RejectSignedOut(t *testing.T) {
	_, router := newTestRouter(t)

	req := testutil.NewJSONRequest(t, "POST", "/prompts", map[string]string{"title": "t", "content": "c"})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestServeView_ReturnsSubmission(t *testing.T) {
	stores, router := newTestRouter(t)
	user := testutil.RegularUser()
	sub, err := stores.Submissions.SubmitPrompt(
		store.Submitter{ID: user.ID, Name: user.Name, Team: user.Team},
		store.PromptInput{Title: "detail", Content: "c"},
	)
	if err != nil {
		t.Fatalf("SubmitPrompt failed: %v", err)
	}

	req := testutil.NewAuthenticatedRequest("GET", "/"+sub.ID, testutil.AdminUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got submissionView
	testutil.DecodeJSON(t, rec.Body, &got)
	if got.ID != sub.ID || got.Title != "detail" {
		t.Errorf("unexpected detail view: %+v", got)
	}
}

func TestServeSubmitFile_RejectsOversizeDeclaration(t *testing.T) {
	_, router := newTestRouter(t)

	body := map[string]any{
		"type":     "xlsx",
		"fileName": "huge.xlsx",
		"fileSize": int64(51) << 20,
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/files", body), testutil.RegularUser())
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}
