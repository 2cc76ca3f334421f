package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillforge/catalog-api/internal/api/metrics"
	"github.com/skillforge/catalog-api/internal/core/domain"
	"github.com/skillforge/catalog-api/internal/core/ports"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	sortByTitle     = "title"
	sortByCreatedAt = "created_at"
)

// ListCache abstracts the read-through cache for list results (Redis).
// Get returns (nil, nil) on a miss. Cache failures are never fatal.
type ListCache interface {
	Get(ctx context.Context, key string) (*ports.ListBadgesResult, error)
	Set(ctx context.Context, key string, result *ports.ListBadgesResult) error
	Invalidate(ctx context.Context) error
}

// CatalogService implements badge listing and creation.
type CatalogService struct {
	badges ports.BadgeRepository
	cache  ListCache
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewCatalogService(badges ports.BadgeRepository, cache ListCache, audit ports.AuditSink, logger zerolog.Logger) *CatalogService {
	return &CatalogService{badges: badges, cache: cache, audit: audit, logger: logger}
}

// ListBadges resolves the query in a fixed order: authorization scope
// first, then parameter validation, then a single store query. The result
// is deterministic for identical inputs against an unchanged store.
func (s *CatalogService) ListBadges(ctx context.Context, input ports.ListBadgesInput) (*ports.ListBadgesResult, error) {
	start := time.Now()

	// The status filter is privileged: non-admins are rejected outright,
	// never downgraded to an empty result.
	if input.HasStatus && !input.IsAdmin {
		return nil, fmt.Errorf("status filter requires admin rights: %w", domain.ErrForbidden)
	}

	filter, err := s.resolveFilter(input)
	if err != nil {
		return nil, err
	}

	key := cacheKey(filter)
	if cached, cacheErr := s.cache.Get(ctx, key); cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Msg("list cache read failed, querying store")
	} else if cached != nil {
		metrics.ListCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.ListCacheTotal.WithLabelValues("miss").Inc()
	}

	items, total, err := s.badges.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("badge list query failed")
		return nil, err
	}

	result := &ports.ListBadgesResult{
		Items:   toBadgeViews(items),
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
		HasMore: int64(filter.Offset+len(items)) < total,
	}

	if cacheErr := s.cache.Set(ctx, key, result); cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Msg("list cache write failed")
	}

	metrics.BadgesListedTotal.WithLabelValues(scopeLabel(input.IsAdmin)).Inc()
	metrics.ListDuration.Observe(time.Since(start).Seconds())

	return result, nil
}

// resolveFilter validates every parameter and computes the visibility
// scope. All validation errors surface before the store is touched.
func (s *CatalogService) resolveFilter(input ports.ListBadgesInput) (ports.ListBadgesFilter, error) {
	var filter ports.ListBadgesFilter

	if input.Category != "" {
		category, err := domain.ParseCategory(input.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = category
	}

	if input.Level != "" {
		level, err := domain.ParseLevel(input.Level)
		if err != nil {
			return filter, err
		}
		filter.Level = level
	}

	switch {
	case input.HasStatus:
		status, err := domain.ParseBadgeStatus(input.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.BadgeStatus{status}
	case !input.IsAdmin:
		filter.Statuses = []domain.BadgeStatus{domain.StatusActive}
	}
	// admin without a status filter sees every status: Statuses stays empty

	sortField, sortAsc, err := resolveSort(input.Sort, input.Order)
	if err != nil {
		return filter, err
	}
	filter.SortField = sortField
	filter.SortAsc = sortAsc

	filter.Limit = defaultLimit
	if input.HasLimit {
		if input.Limit < 1 {
			return filter, &domain.FieldError{Field: "limit", Value: fmt.Sprintf("%d", input.Limit)}
		}
		filter.Limit = input.Limit
		if filter.Limit > maxLimit {
			filter.Limit = maxLimit
		}
	}

	if input.HasOffset {
		if input.Offset < 0 {
			return filter, &domain.FieldError{Field: "offset", Value: fmt.Sprintf("%d", input.Offset)}
		}
		filter.Offset = input.Offset
	}

	filter.Search = input.Search
	return filter, nil
}

// resolveSort picks the sort field and direction. created_at defaults to
// newest-first; title defaults to ascending. An explicit order wins.
func resolveSort(sort, order string) (string, bool, error) {
	field := sortByCreatedAt
	switch sort {
	case "", sortByCreatedAt:
	case sortByTitle:
		field = sortByTitle
	default:
		return "", false, &domain.FieldError{Field: "sort", Value: sort}
	}

	asc := field == sortByTitle
	switch order {
	case "":
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", false, &domain.FieldError{Field: "order", Value: order}
	}
	return field, asc, nil
}

// CreateBadge validates and persists a new badge. The created_by reference
// is checked by the repository before insert; a stale reference surfaces
// as domain.ErrUnknownCreator.
func (s *CatalogService) CreateBadge(ctx context.Context, input ports.CreateBadgeInput) (*ports.BadgeView, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}
	level, err := domain.ParseLevel(input.Level)
	if err != nil {
		return nil, err
	}
	status := domain.StatusActive
	if input.Status != "" {
		if status, err = domain.ParseBadgeStatus(input.Status); err != nil {
			return nil, err
		}
	}

	badge := &domain.Badge{
		ID:          generateBadgeID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Level:       level,
		Status:      status,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.badges.Insert(ctx, badge); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create badge")
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("list cache invalidation failed")
	}

	s.audit.Record(domain.AuditEntry{
		Action:    domain.AuditBadgeCreated,
		EntityID:  badge.ID,
		ActorID:   input.ActorID,
		Timestamp: badge.CreatedAt,
	})

	metrics.BadgesCreatedTotal.WithLabelValues(string(category)).Inc()
	s.logger.Info().Str("badge_id", badge.ID).Str("category", string(category)).Msg("badge created")

	view := toBadgeView(badge)
	return &view, nil
}

// generateBadgeID returns a unique badge identifier in the format bdg_XXXXXXXX.
func generateBadgeID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("bdg_%08x", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("bdg_%08x", b)
}

func cacheKey(f ports.ListBadgesFilter) string {
	return fmt.Sprintf("category=%s&level=%s&statuses=%v&q=%s&sort=%s&asc=%t&limit=%d&offset=%d",
		f.Category, f.Level, f.Statuses, f.Search, f.SortField, f.SortAsc, f.Limit, f.Offset)
}

func scopeLabel(isAdmin bool) string {
	if isAdmin {
		return "admin"
	}
	return "public"
}

func toBadgeView(b *domain.Badge) ports.BadgeView {
	return ports.BadgeView{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Category:    string(b.Category),
		Level:       string(b.Level),
		Status:      string(b.Status),
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
	}
}

func toBadgeViews(badges []*domain.Badge) []ports.BadgeView {
	out := make([]ports.BadgeView, len(badges))
	for i, b := range badges {
		out[i] = toBadgeView(b)
	}
	return out
}
