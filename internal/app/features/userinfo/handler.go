// internal/app/features/userinfo/handler.go
package userinfo

import (
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
)

// Handler serves the restored session identity.
type Handler struct{}

// NewHandler creates a new userinfo handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ServeUserInfo returns JSON with the current user's authentication status
// and identity. This is how the front end restores a session on startup;
// there is no freshness or expiry check beyond the cookie itself.
//
// Response format:
//
//	{ "isAuthenticated": bool, "id": "...", "name": "...", "email": "...",
//	  "role": "...", "team": "...", "instance": "..." }
func (h *Handler) ServeUserInfo(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		respond.JSON(w, http.StatusOK, map[string]any{
			"isAuthenticated": false,
		})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"isAuthenticated": true,
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"role":            user.Role,
		"team":            user.Team,
		"instance":        user.Instance,
	})
}
