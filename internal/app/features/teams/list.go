// internal/app/features/teams/list.go
package teams

import (
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/system/respond"
)

// ServeList handles GET /teams.
// Authorization: RequireRole("admin") middleware in routes.go ensures only
// admins reach this handler.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	teams := h.Directory.Teams()

	views := make([]teamView, 0, len(teams))
	for _, t := range teams {
		members := h.Directory.GetUsersByTeam(t.ID)
		views = append(views, newTeamView(t, len(members)))
	}
	respond.JSON(w, http.StatusOK, views)
}
