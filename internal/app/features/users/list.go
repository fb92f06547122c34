// internal/app/features/users/list.go
package users

import (
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/system/respond"
)

// ServeList handles GET /users.
// Authorization: RequireRole("admin") middleware in routes.go ensures only
// admins reach this handler.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	all := h.Directory.Users()

	views := make([]userView, 0, len(all))
	for _, u := range all {
		views = append(views, newUserView(h.Directory, u))
	}
	respond.JSON(w, http.StatusOK, views)
}
