// internal/app/features/authproxy/handler.go

// Package authproxy is the delegated-auth variant of the identity layer.
//
// Instead of a password check, identity comes from a platform auth proxy:
// a GET to a fixed status endpoint yields a client principal, which is
// adopted only when its userDetails value is on the configured allow-list.
// The admin role is granted by exact match against the configured admin
// address. Sign-in and sign-out are plain redirects to the platform's own
// endpoints.
//
// The variant is selected at deploy time via the auth_mode config key; only
// one of authproxy and login is ever mounted.
package authproxy

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"go.uber.org/zap"
)

const statusTimeout = 5 * time.Second

// Handler adopts identities reported by the platform auth proxy.
type Handler struct {
	Client     *http.Client
	StatusURL  string
	LoginURL   string
	LogoutURL  string
	Allowed    map[string]struct{} // allow-listed userDetails values
	AdminEmail string
	DevMode    bool // non-production runs fall back to a development identity
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

// NewHandler constructs an authproxy handler.
func NewHandler(statusURL, loginURL, logoutURL string, allowed []string, adminEmail string, devMode bool, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		if a = strings.TrimSpace(a); a != "" {
			set[strings.ToLower(a)] = struct{}{}
		}
	}
	return &Handler{
		Client:     &http.Client{Timeout: statusTimeout},
		StatusURL:  statusURL,
		LoginURL:   loginURL,
		LogoutURL:  logoutURL,
		Allowed:    set,
		AdminEmail: adminEmail,
		DevMode:    devMode,
		SessionMgr: sessionMgr,
		Log:        logger,
	}
}

// devIdentity is adopted in non-production runs when the proxy is
// unreachable, mirroring the front end's development fallback.
var devIdentity = auth.SessionUser{
	ID:    "dev",
	Name:  "Development User",
	Email: "dev@example.com",
	Role:  "admin",
}

// HandleRefresh queries the auth proxy and adopts the reported principal.
//
// Route: GET /auth/refresh
//
// Unknown or missing principals leave the identity unset (200 with
// isAuthenticated=false); proxy failures do the same rather than surfacing
// an error, except in dev mode where the development identity is adopted.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	principal, err := fetchPrincipal(r.Context(), h.Client, h.StatusURL)
	if err != nil {
		h.Log.Warn("auth proxy unreachable", zap.Error(err))
		if h.DevMode {
			h.adopt(w, r, devIdentity)
			return
		}
		respond.JSON(w, http.StatusOK, map[string]any{"isAuthenticated": false})
		return
	}

	if principal == nil {
		respond.JSON(w, http.StatusOK, map[string]any{"isAuthenticated": false})
		return
	}

	details := strings.ToLower(strings.TrimSpace(principal.UserDetails))
	if _, ok := h.Allowed[details]; !ok {
		h.Log.Info("principal not on allow-list", zap.String("user_details", principal.UserDetails))
		respond.JSON(w, http.StatusOK, map[string]any{"isAuthenticated": false})
		return
	}

	role := "user"
	if details == strings.ToLower(h.AdminEmail) {
		role = "admin"
	}
	h.adopt(w, r, auth.SessionUser{
		ID:    principal.UserID,
		Name:  principal.UserDetails,
		Email: principal.UserDetails,
		Role:  role,
	})
}

func (h *Handler) adopt(w http.ResponseWriter, r *http.Request, su auth.SessionUser) {
	if err := h.SessionMgr.SignIn(w, r, &su); err != nil {
		h.Log.Error("session write failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"isAuthenticated": true,
		"id":              su.ID,
		"name":            su.Name,
		"email":           su.Email,
		"role":            su.Role,
	})
}

// HandleLogin redirects to the platform's sign-in endpoint.
//
// Route: GET /auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.LoginURL, http.StatusSeeOther)
}

// HandleLogout clears the local session and redirects to the platform's
// sign-out endpoint.
//
// Route: GET /auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("session clear failed", zap.Error(err))
	}
	http.Redirect(w, r, h.LogoutURL, http.StatusSeeOther)
}
