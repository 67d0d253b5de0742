package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kirinyoku/travelease/internal/domain"
	redisx "github.com/kirinyoku/travelease/internal/redis"
	"github.com/kirinyoku/travelease/internal/repository"
)

// SessionStore keeps sign-in sessions under opaque random tokens. Each user
// also has a set of their live tokens so all of them can be revoked at once.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	const op = "redis.SessionStore.Create"

	sess := domain.Session{
		Token:     randomHex(32),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	b, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	userKey := redisx.KeyUserSessions(userID)

	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, redisx.KeySession(sess.Token), b, s.ttl)
		p.SAdd(ctx, userKey, sess.Token)
		p.Expire(ctx, userKey, s.ttl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sess, nil
}

// Get returns repository.ErrNoSession for unknown or expired tokens.
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	const op = "redis.SessionStore.Get"

	if token == "" {
		return nil, fmt.Errorf("%s: %w", op, repository.ErrNoSession)
	}

	v, err := s.rdb.Get(ctx, redisx.KeySession(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", op, repository.ErrNoSession)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var sess domain.Session
	if err := json.Unmarshal(v, &sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sess, nil
}

// Delete removes one session and returns it, so the caller can announce
// whose session ended.
func (s *SessionStore) Delete(ctx context.Context, token string) (*domain.Session, error) {
	const op = "redis.SessionStore.Delete"

	sess, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, redisx.KeySession(token))
		p.SRem(ctx, redisx.KeyUserSessions(sess.UserID), token)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sess, nil
}

// DeleteAllForUser revokes every session of a user and returns the revoked
// tokens.
func (s *SessionStore) DeleteAllForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const op = "redis.SessionStore.DeleteAllForUser"

	userKey := redisx.KeyUserSessions(userID)

	tokens, err := s.rdb.SMembers(ctx, userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		keys = append(keys, redisx.KeySession(t))
	}
	keys = append(keys, userKey)

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, nil
}

// randomHex returns n random bytes hex-encoded. crypto/rand.Read does not fail
// on supported platforms.
func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
