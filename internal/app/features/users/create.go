// internal/app/features/users/create.go
package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// ServeCreate handles POST /users.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if err := respond.Decode(r, &in); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		respond.BadRequest(w, "name and email are required")
		return
	}
	if in.Password == "" {
		respond.BadRequest(w, "password is required")
		return
	}

	user, err := h.Directory.CreateUser(directory.UserInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
		TeamID:   in.TeamID,
		Status:   in.Status,
	})
	if err != nil {
		if errors.Is(err, directory.ErrDuplicateEmail) {
			respond.Error(w, http.StatusConflict, "a user with this email already exists")
			return
		}
		h.Log.Error("create user failed", zap.Error(err))
		respond.Internal(w)
		return
	}

	h.Log.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role))
	respond.JSON(w, http.StatusCreated, newUserView(h.Directory, user))
}
