// internal/app/features/users/delete.go
package users

import (
	"errors"
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeDelete handles DELETE /users/{userID}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	if err := h.Directory.DeleteUser(id); err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			respond.NotFound(w, "user not found")
			return
		}
		h.Log.Error("delete user failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	h.Log.Info("user deleted", zap.String("user_id", id))
	respond.JSON(w, http.StatusOK, map[string]any{"deleted": true})
}
