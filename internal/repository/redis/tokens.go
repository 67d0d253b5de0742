package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	redisx "github.com/kirinyoku/travelease/internal/redis"
	"github.com/kirinyoku/travelease/internal/repository"
)

// ResetTokenStore holds single-use password reset tokens.
type ResetTokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewResetTokenStore(rdb *redis.Client, ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{rdb: rdb, ttl: ttl}
}

func (s *ResetTokenStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	const op = "redis.ResetTokenStore.Issue"

	token := randomHex(24)

	ok, err := s.rdb.SetNX(ctx, redisx.KeyResetToken(token), userID.String(), s.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return "", fmt.Errorf("%s: %w", op, repository.ErrConflict)
	}

	return token, nil
}

// Consume returns the user a token was issued for and deletes the token in
// the same step, so a token works once.
//
// Returns:
//   - error: repository.ErrNoToken if the token is unknown, used or expired.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	const op = "redis.ResetTokenStore.Consume"

	v, err := s.rdb.GetDel(ctx, redisx.KeyResetToken(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, fmt.Errorf("%s: %w", op, repository.ErrNoToken)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}
