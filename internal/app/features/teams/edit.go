// internal/app/features/teams/edit.go
package teams

import (
	"errors"
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeEdit handles PUT /teams/{teamID}. A blank name leaves the existing
// name in place; the other fields are applied as given.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")

	var in teamInput
	if err := respond.Decode(r, &in); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	team, err := h.Directory.UpdateTeam(id, directory.TeamInput{
		Name:        in.Name,
		Description: in.Description,
		Instance:    in.Instance,
		Color:       in.Color,
	})
	if err != nil {
		if errors.Is(err, directory.ErrTeamNotFound) {
			respond.NotFound(w, "team not found")
			return
		}
		h.Log.Error("update team failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	members := h.Directory.GetUsersByTeam(team.ID)
	respond.JSON(w, http.StatusOK, newTeamView(team, len(members)))
}
