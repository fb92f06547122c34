// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// Handler clears the current session.
type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

// NewHandler constructs a logout handler.
func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, Log: logger}
}

// HandleLogout signs the current user out. Signing out while already signed
// out is fine; the result is the same.
//
// Route: POST /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("user signed out", zap.String("user_id", u.ID))
	}
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("session clear failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"signed_out": true})
}
