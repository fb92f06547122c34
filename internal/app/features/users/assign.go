// internal/app/features/users/assign.go
package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type assignInput struct {
	TeamID string `json:"teamId"`
}

// ServeAssign handles POST /users/{userID}/team. The target team must
// exist.
func (h *Handler) ServeAssign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var in assignInput
	if err := respond.Decode(r, &in); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(in.TeamID) == "" {
		respond.BadRequest(w, "teamId is required")
		return
	}

	user, err := h.Directory.AssignUserToTeam(id, in.TeamID)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrTeamNotFound):
			respond.NotFound(w, "team not found")
		case errors.Is(err, directory.ErrUserNotFound):
			respond.NotFound(w, "user not found")
		default:
			h.Log.Error("assign user failed", zap.Error(err))
			respond.Internal(w)
		}
		return
	}
	respond.JSON(w, http.StatusOK, newUserView(h.Directory, user))
}

// ServeUnassign handles DELETE /users/{userID}/team.
func (h *Handler) ServeUnassign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	user, err := h.Directory.RemoveUserFromTeam(id)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			respond.NotFound(w, "user not found")
			return
		}
		h.Log.Error("unassign user failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.JSON(w, http.StatusOK, newUserView(h.Directory, user))
}
