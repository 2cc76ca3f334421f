package ports

import (
	"context"
	"time"
)

// ListBadgesInput carries the raw query parameters for the listing
// endpoint, plus the caller's authorization context. String fields hold
// the values exactly as supplied; the service owns validation and
// normalization. HasLimit/HasOffset distinguish "omitted" from "zero".
type ListBadgesInput struct {
	Category  string
	Level     string
	Status    string
	HasStatus bool
	Search    string
	Sort      string
	Order     string
	Limit     int
	HasLimit  bool
	Offset    int
	HasOffset bool
	IsAdmin   bool
}

// BadgeView is the badge representation returned by the service.
type BadgeView struct {
	ID          string
	Title       string
	Description string
	Category    string
	Level       string
	Status      string
	CreatedBy   string
	CreatedAt   time.Time
}

// ListBadgesResult is one page of matches plus pagination metadata.
// HasMore reports whether records exist beyond the returned page:
// offset + len(Items) < Total.
type ListBadgesResult struct {
	Items   []BadgeView
	Total   int64
	Limit   int
	Offset  int
	HasMore bool
}

// CreateBadgeInput carries the data for a new catalog badge.
type CreateBadgeInput struct {
	Title       string
	Description string
	Category    string
	Level       string
	Status      string
	CreatedBy   string
	ActorID     string // caller recorded in the audit trail
}

// CatalogService defines the badge catalog use cases.
type CatalogService interface {
	ListBadges(ctx context.Context, input ListBadgesInput) (*ListBadgesResult, error)
	CreateBadge(ctx context.Context, input CreateBadgeInput) (*BadgeView, error)
}
