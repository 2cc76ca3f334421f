package ports

import (
	"context"

	"github.com/skillforge/catalog-api/internal/core/domain"
)

// CreateUserInput carries the data for a new directory user.
type CreateUserInput struct {
	Email       string
	DisplayName string
	IsAdmin     bool
	Subject     string
	ActorID     string // caller recorded in the audit trail
}

// DirectoryService manages the user directory referenced by badges.
type DirectoryService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// Resolve looks up the caller identity for the authorization context.
	Resolve(ctx context.Context, userID string) (*domain.User, error)
}
