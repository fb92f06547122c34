// internal/app/features/teams/create.go
package teams

import (
	"net/http"
	"strings"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// ServeCreate handles POST /teams.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var in teamInput
	if err := respond.Decode(r, &in); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		respond.BadRequest(w, "team name is required")
		return
	}

	team, err := h.Directory.CreateTeam(directory.TeamInput{
		Name:        in.Name,
		Description: in.Description,
		Instance:    in.Instance,
		Color:       in.Color,
	})
	if err != nil {
		h.Log.Error("create team failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	h.Log.Info("team created",
		zap.String("team_id", team.ID),
		zap.String("name", team.Name))
	respond.JSON(w, http.StatusCreated, newTeamView(team, 0))
}
