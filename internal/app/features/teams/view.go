// internal/app/features/teams/view.go
package teams

import (
	"errors"
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeView handles GET /teams/{teamID}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")

	team, err := h.Directory.GetTeamByID(id)
	if err != nil {
		if errors.Is(err, directory.ErrTeamNotFound) {
			respond.NotFound(w, "team not found")
			return
		}
		h.Log.Error("load team failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	members := h.Directory.GetUsersByTeam(team.ID)
	respond.JSON(w, http.StatusOK, newTeamView(team, len(members)))
}

// ServeMembers handles GET /teams/{teamID}/users.
func (h *Handler) ServeMembers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")

	team, err := h.Directory.GetTeamByID(id)
	if err != nil {
		if errors.Is(err, directory.ErrTeamNotFound) {
			respond.NotFound(w, "team not found")
			return
		}
		h.Log.Error("load team failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	members := h.Directory.GetUsersByTeam(team.ID)
	views := make([]memberView, 0, len(members))
	for _, u := range members {
		views = append(views, newMemberView(u))
	}
	respond.JSON(w, http.StatusOK, views)
}
