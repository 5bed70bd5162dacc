package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

const (
	roleKeyPrefix = "roleperm:"
	defaultTTL    = 5 * time.Minute
)

// RoleCache is a read-through cache in front of a ports.RoleRepository.
// Lookups hit Redis first and fall back to the wrapped repository; writes
// invalidate the cached entry. Cache failures are logged and degrade to a
// direct repository call, never to a denied request.
type RoleCache struct {
	inner  ports.RoleRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRoleCache(inner ports.RoleRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *RoleCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RoleCache{inner: inner, client: client, ttl: ttl, log: log}
}

func (c *RoleCache) FindAll(ctx context.Context) ([]domain.RolePermission, error) {
	return c.inner.FindAll(ctx)
}

func (c *RoleCache) FindByRole(ctx context.Context, role string) (*domain.RolePermission, error) {
	key := roleKeyPrefix + role

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var perm domain.RolePermission
		if err := json.Unmarshal(raw, &perm); err == nil {
			return &perm, nil
		}
		c.log.Warn().Str("role", role).Msg("corrupt role cache entry, refetching")
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("role", role).Msg("role cache read failed")
	}

	perm, err := c.inner.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(perm); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("role", role).Msg("role cache write failed")
		}
	}
	return perm, nil
}

func (c *RoleCache) Upsert(ctx context.Context, perm domain.RolePermission) error {
	if err := c.inner.Upsert(ctx, perm); err != nil {
		return err
	}
	if err := c.client.Del(ctx, roleKeyPrefix+perm.Role).Err(); err != nil {
		c.log.Warn().Err(err).Str("role", perm.Role).Msg("role cache invalidation failed")
	}
	return nil
}
