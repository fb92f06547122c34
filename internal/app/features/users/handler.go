// internal/app/features/users/handler.go

// Package users is the admin surface for managing accounts: list, create,
// update, delete, and team assignment.
package users

import (
	"github.com/dalemusser/reviewhub/internal/app/store/directory"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Users.
type Handler struct {
	Directory *directory.Store
	Log       *zap.Logger
}

// NewHandler constructs a Users handler bound to the directory store.
func NewHandler(dir *directory.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Directory: dir,
		Log:       logger,
	}
}
