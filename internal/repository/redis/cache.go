package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	redisx "github.com/kirinyoku/travelease/internal/redis"
)

// Cache is a read-through JSON cache for catalog reads. Redis being down
// only costs a trip to the loader.
type Cache struct {
	rdb *redis.Client
	sf  singleflight.Group
}

func New(client *redis.Client) *Cache {
	return &Cache{rdb: client}
}

func (c *Cache) get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return false, err
	}

	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, key, b, ttl).Err()
}

// GetOrSetJSON returns the cached value under key or loads, stores and
// returns it. Concurrent misses on the same key share one loader call, which
// runs detached from the first caller's cancellation.
func GetOrSetJSON[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, error) {
	var cached T
	if ok, err := c.get(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	vAny, err, _ := c.sf.Do(key, func() (any, error) {
		ctx := context.WithoutCancel(ctx)

		var again T
		if ok, err := c.get(ctx, key, &again); err == nil && ok {
			return again, nil
		}

		v, err := loader(ctx)
		if err != nil {
			return nil, err
		}

		_ = c.set(ctx, key, v, ttl)

		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	v, ok := vAny.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("redis.GetOrSetJSON: unexpected %T for %q", vAny, key)
	}

	return v, nil
}

// InvalidateCatalog drops every cached tour list and tour. It is called after
// the catalog is written, so readers see the new rows on their next fetch.
func (c *Cache) InvalidateCatalog(ctx context.Context) error {
	const op = "redis.Cache.InvalidateCatalog"

	var keys []string

	iter := c.rdb.Scan(ctx, 0, redisx.KeyCatalogPattern(), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
