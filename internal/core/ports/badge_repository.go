package ports

import (
	"context"

	"github.com/skillforge/catalog-api/internal/core/domain"
)

// ListBadgesFilter carries the resolved query for the badge store. By the
// time it reaches the repository every field has been validated and the
// visibility scope computed; Statuses is never empty for non-admin callers.
type ListBadgesFilter struct {
	Category  domain.Category      // optional: empty = all categories
	Level     domain.Level         // optional: empty = all levels
	Statuses  []domain.BadgeStatus // visibility scope; empty = all statuses (admin only)
	Search    string               // optional: case-insensitive match on title/description
	SortField string               // "title" or "created_at"
	SortAsc   bool
	Limit     int
	Offset    int
}

// BadgeRepository defines persistence operations for catalog badges.
type BadgeRepository interface {
	// Insert persists a new badge. The created_by reference must resolve to
	// an existing user; domain.ErrUnknownCreator is returned otherwise.
	Insert(ctx context.Context, b *domain.Badge) error
	// List returns one page of badges matching filter plus the total match
	// count before pagination. Ordering is stable across identical calls.
	List(ctx context.Context, filter ListBadgesFilter) ([]*domain.Badge, int64, error)
}
