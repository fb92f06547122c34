// internal/app/features/users/edit.go
package users

import (
	"errors"
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeEdit handles PUT /users/{userID}. Blank name/email/role/status leave
// the existing values in place; teamId is applied as given, so sending ""
// clears the assignment.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var in editInput
	if err := respond.Decode(r, &in); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	user, err := h.Directory.UpdateUser(id, directory.UserInput{
		Name:   in.Name,
		Email:  in.Email,
		Role:   in.Role,
		TeamID: in.TeamID,
		Status: in.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrUserNotFound):
			respond.NotFound(w, "user not found")
		case errors.Is(err, directory.ErrDuplicateEmail):
			respond.Error(w, http.StatusConflict, "a user with this email already exists")
		default:
			h.Log.Error("update user failed", zap.Error(err))
			respond.Internal(w)
		}
		return
	}
	respond.JSON(w, http.StatusOK, newUserView(h.Directory, user))
}
