// internal/app/features/users/view.go
package users

import (
	"errors"
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeView handles GET /users/{userID}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	user, err := h.Directory.GetUserByID(id)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			respond.NotFound(w, "user not found")
			return
		}
		h.Log.Error("load user failed", zap.Error(err))
		respond.Internal(w)
		return
	}
	respond.JSON(w, http.StatusOK, newUserView(h.Directory, user))
}
