// internal/app/features/teams/handler.go

// Package teams is the admin surface for managing teams: list, create,
// update, delete, and listing a team's members. Deleting a team also
// unassigns its members; the directory store applies that atomically.
package teams

import (
	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Teams.
type Handler struct {
	Directory *directory.Store
	Log       *zap.Logger
}

// NewHandler constructs a Teams handler bound to the directory store.
func NewHandler(dir *directory.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Directory: dir,
		Log:       logger,
	}
}
