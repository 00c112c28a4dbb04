// Package cachecountsrepo caches per-owner resource counts so the dashboard
// does not hit the database on every page load. Entries expire after a TTL
// and are invalidated whenever the owner creates or deletes a resource.
package cachecountsrepo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	cacherepo "lifehub/internal/repositories/cache"
)

type repository struct {
	cache     cacherepo.Cache
	countsTTL time.Duration
}

func New(cache cacherepo.Cache, countsTTL time.Duration) *repository {
	return &repository{
		cache:     cache,
		countsTTL: countsTTL,
	}
}

// Count returns the cached count and whether a cached value was present.
func (r *repository) Count(ctx context.Context, resource string, ownerID string) (int, bool, error) {
	raw, err := r.cache.Get(ctx, key(resource, ownerID)).Result()
	if err != nil {
		return 0, false, err
	}

	if raw == "" {
		return 0, false, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}

	return count, true, nil
}

func (r *repository) SetCount(ctx context.Context, resource string, ownerID string, count int) error {
	return r.cache.Set(ctx, key(resource, ownerID), strconv.Itoa(count), r.countsTTL).Err()
}

func (r *repository) Invalidate(ctx context.Context, resource string, ownerID string) error {
	return r.cache.Del(ctx, key(resource, ownerID)).Err()
}

func key(resource string, ownerID string) string {
	return fmt.Sprintf("counts:%s:%s", resource, ownerID)
}
