package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	redisx "github.com/kirinyoku/travelease/internal/redis"
)

// NavStore hands a value from one page to the next under a random id. Entries
// are never updated: each step saves a new value and passes on the new id.
type NavStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewNavStore(rdb *redis.Client, ttl time.Duration) *NavStore {
	return &NavStore{rdb: rdb, ttl: ttl}
}

func (s *NavStore) Save(ctx context.Context, v any) (string, error) {
	const op = "redis.NavStore.Save"

	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	id := randomHex(16)
	if err := s.rdb.Set(ctx, redisx.KeyNavState(id), b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// Load decodes the value saved under id into dst. It reports false, with no
// error, when the id is empty, unknown or expired.
func (s *NavStore) Load(ctx context.Context, id string, dst any) (bool, error) {
	const op = "redis.NavStore.Load"

	if id == "" {
		return false, nil
	}

	b, err := s.rdb.Get(ctx, redisx.KeyNavState(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
