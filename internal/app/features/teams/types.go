// internal/app/features/teams/types.go
package teams

import (
	"time"

	"github.com/dalemusser/reviewhub/internal/domain/models"
)

// teamInput is the request body for creating or updating a team.
type teamInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Instance    string `json:"instance"`
	Color       string `json:"color"`
}

// teamView is a single team as returned to clients.
type teamView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Instance    string    `json:"instance"`
	Color       string    `json:"color"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// memberView is a team member row; password material never leaves the
// directory.
type memberView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func newTeamView(t models.Team, memberCount int) teamView {
	return teamView{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Instance:    t.Instance,
		Color:       t.Color,
		MemberCount: memberCount,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newMemberView(u models.User) memberView {
	return memberView{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Status: u.Status,
	}
}
