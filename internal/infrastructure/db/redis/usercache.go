package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

const profileTTL = 5 * time.Minute

// ProfileCache is a read-through cache of public identity views backed by
// Redis. Only the public view is ever stored; password hashes never reach
// the cache. Key format: profile:<user_id>
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns the cached view for id, or (nil, nil) on a miss.
func (c *ProfileCache) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile cache get: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// A corrupt entry behaves like a miss; the store read repairs it.
		return nil, nil
	}
	return &user, nil
}

// Set stores the public view of a user (expires after profileTTL).
func (c *ProfileCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user.PublicView())
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, profileTTL).Err()
}

// Invalidate drops the cached view for id. Called after every update so a
// stale profile never outlives a mutation.
func (c *ProfileCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ProfileCache) key(id string) string {
	return "profile:" + id
}
