// internal/domain/models/user.go
package models

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User account statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a portal account (admins and regular users).
//
// NOTE:
//   - Email doubles as the login key and must be unique in the directory.
//   - TeamID is empty when the user is unassigned. Deleting a team clears
//     the TeamID of every user that pointed at it.
//   - PasswordHash is a bcrypt hash. It serializes for the local store;
//     feature view types strip it before anything reaches a client.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameCI       string `json:"name_ci"` // lowercase, diacritics-stripped
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash,omitempty"`
	Role         string `json:"role"`              // admin | user
	TeamID       string `json:"team_id,omitempty"` // empty = unassigned
	Status       string `json:"status"`            // active | inactive

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
