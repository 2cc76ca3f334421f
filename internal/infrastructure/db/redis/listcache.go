package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skillforge/catalog-api/internal/core/ports"
)

const (
	listCacheTTL = time.Minute
	// generationKey is a monotonically increasing counter baked into every
	// cache key. Bumping it on a catalog write orphans all cached pages at
	// once, so no key scan is needed to invalidate.
	generationKey = "badges:list:gen"
	listKeyPrefix = "badges:list:"
)

// ListCache caches serialized list results in Redis.
type ListCache struct {
	client *redis.Client
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client) *ListCache {
	return &ListCache{client: client}
}

// Get returns the cached result for the query key, or (nil, nil) on a miss.
func (c *ListCache) Get(ctx context.Context, key string) (*ports.ListBadgesResult, error) {
	full, err := c.fullKey(ctx, key)
	if err != nil {
		return nil, err
	}

	raw, err := c.client.Get(ctx, full).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list cache get: %w", err)
	}

	var result ports.ListBadgesResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("list cache decode: %w", err)
	}
	return &result, nil
}

// Set stores the result under the query key for listCacheTTL.
func (c *ListCache) Set(ctx context.Context, key string, result *ports.ListBadgesResult) error {
	full, err := c.fullKey(ctx, key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("list cache encode: %w", err)
	}
	if err := c.client.Set(ctx, full, raw, listCacheTTL).Err(); err != nil {
		return fmt.Errorf("list cache set: %w", err)
	}
	return nil
}

// Invalidate bumps the generation counter, orphaning every cached page.
// Orphaned entries expire on their own TTL.
func (c *ListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("list cache invalidate: %w", err)
	}
	return nil
}

func (c *ListCache) fullKey(ctx context.Context, key string) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("list cache generation: %w", err)
	}
	return fmt.Sprintf("%s%d:%s", listKeyPrefix, gen, key), nil
}
