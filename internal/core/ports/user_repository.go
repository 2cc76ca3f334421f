package ports

import (
	"context"

	"github.com/skillforge/catalog-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
