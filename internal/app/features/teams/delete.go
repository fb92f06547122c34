// internal/app/features/teams/delete.go
package teams

import (
	"errors"
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeDelete handles DELETE /teams/{teamID}. Members of the deleted team
// are left unassigned rather than removed.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "teamID")

	if err := h.Directory.DeleteTeam(id); err != nil {
		if errors.Is(err, directory.ErrTeamNotFound) {
			respond.NotFound(w, "team not found")
			return
		}
		h.Log.Error("delete team failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	h.Log.Info("team deleted", zap.String("team_id", id))
	respond.JSON(w, http.StatusOK, map[string]any{"deleted": true})
}
