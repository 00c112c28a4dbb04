// Package cachesessionrepo keeps login sessions in redis, keyed by the
// session id carried in the access token's sid claim. Deleting the key
// revokes the token before its expiry.
package cachesessionrepo

import (
	"context"
	"lifehub/internal/models"
	cacherepo "lifehub/internal/repositories/cache"
	"time"
)

const keyPrefix = "session:"

type repository struct {
	cache cacherepo.Cache
	ttl   time.Duration
}

func New(cache cacherepo.Cache, ttl time.Duration) *repository {
	return &repository{
		cache: cache,
		ttl:   ttl,
	}
}

func (r *repository) SaveSession(ctx context.Context, sessionID string, userJSON string) error {
	return r.cache.Set(ctx, key(sessionID), userJSON, r.ttl).Err()
}

func (r *repository) DeleteSession(ctx context.Context, sessionID string) error {
	deleted, err := r.cache.Del(ctx, key(sessionID)).Result()
	if err != nil {
		return err
	}

	if deleted == 0 {
		return models.ErrSessionNotFound
	}

	return nil
}

func (r *repository) UserBySession(ctx context.Context, sessionID string) (string, error) {
	userJSON, err := r.cache.Get(ctx, key(sessionID)).Result()
	if err != nil {
		return "", err
	}

	if userJSON == "" {
		return "", models.ErrSessionNotFound
	}

	return userJSON, nil
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}
