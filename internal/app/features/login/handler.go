// internal/app/features/login/handler.go
package login

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/dalemusser/reviewhub/internal/app/system/ratelimit"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// Handler performs password sign-in against the directory.
type Handler struct {
	Directory  *directory.Store
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.SignInLimiter
	Delay      time.Duration // simulated authentication delay (0 in tests)
	Log        *zap.Logger
}

// NewHandler constructs a login handler bound to the directory store.
func NewHandler(dir *directory.Store, sessionMgr *auth.SessionManager, delay time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		Directory:  dir,
		SessionMgr: sessionMgr,
		Limiter:    ratelimit.NewSignInLimiter(),
		Delay:      delay,
		Log:        logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// identityView is the identity payload returned on success; it matches the
// record persisted in the session cookie.
type identityView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Team     string `json:"team,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// HandleLogin signs a user in with email + password.
//
// Route: POST /login
//
// The password check runs against active accounts only. On success the
// resolved identity (including the team-name snapshot) is written to the
// session cookie and echoed back as JSON. Failures are always reported as
// 401 "invalid credentials" so callers cannot probe for known emails.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.BadRequest(w, "email and password are required")
		return
	}

	if ok, msg := h.Limiter.Check(r, req.Email); !ok {
		h.Log.Warn("sign-in rate limited",
			zap.String("email", req.Email),
			zap.String("client_ip", ratelimit.ClientIP(r)))
		respond.Error(w, http.StatusTooManyRequests, msg)
		return
	}

	// The original portal shows a spinner over an artificial delay; keep the
	// pacing, but drop the work if the caller goes away first.
	if h.Delay > 0 {
		select {
		case <-time.After(h.Delay):
		case <-r.Context().Done():
			return
		}
	}

	user, err := h.Directory.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, directory.ErrInvalidCredentials) {
			h.Log.Info("sign-in rejected", zap.String("email", req.Email))
			respond.Unauthorized(w, "invalid credentials")
			return
		}
		h.Log.Error("sign-in lookup failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	// Resolve the team snapshot at sign-in time.
	su := &auth.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if user.TeamID != "" {
		if team, err := h.Directory.GetTeamByID(user.TeamID); err == nil {
			su.Team = team.Name
			su.Instance = team.Instance
		}
	}

	h.Limiter.ResetEmail(user.Email)

	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.Log.Error("session write failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	h.Log.Info("user signed in",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role))

	respond.JSON(w, http.StatusOK, identityView{
		ID:       su.ID,
		Name:     su.Name,
		Email:    su.Email,
		Role:     su.Role,
		Team:     su.Team,
		Instance: su.Instance,
	})
}
