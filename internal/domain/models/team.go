// internal/domain/models/team.go
package models

import "time"

// Team is an organizational grouping of users.
//
// Instance is an opaque routing/tenant label ("creative", "strategy", ...)
// that the front end uses to pick a workspace. Color is a display token.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameCI      string `json:"name_ci"` // lowercase, diacritics-stripped
	Description string `json:"description"`
	Instance    string `json:"instance"`
	Color       string `json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
