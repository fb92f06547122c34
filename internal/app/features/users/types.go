// internal/app/features/users/types.go
package users

import (
	"time"

	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"github.com/dalemusser/reviewhub/internal/domain/models"
)

// createInput is the request body for creating a user.
type createInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	TeamID   string `json:"teamId"`
	Status   string `json:"status"`
}

// editInput is the request body for updating a user. Password changes are
// not supported here.
type editInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	TeamID string `json:"teamId"`
	Status string `json:"status"`
}

// userView is a single account as returned to clients. The password hash
// stays server-side.
type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TeamID    string    `json:"teamId,omitempty"`
	TeamName  string    `json:"teamName,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// newUserView builds a view, resolving the team name through the directory.
func newUserView(dir *directory.Store, u models.User) userView {
	v := userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		TeamID:    u.TeamID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.TeamID != "" {
		if team, err := dir.GetTeamByID(u.TeamID); err == nil {
			v.TeamName = team.Name
		}
	}
	return v
}
