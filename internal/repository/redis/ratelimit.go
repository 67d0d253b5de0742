package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	redisx "github.com/kirinyoku/travelease/internal/redis"
)

// slidingWindow records one attempt in a sorted set scored by time and
// reports whether the attempts inside the window stay within the limit.
//
//	KEYS[1] attempts key
//	ARGV    now_ms, window_ms, limit, member
//	returns {allowed 0|1, attempts, retry_after_ms}
var slidingWindow = redis.NewScript(`
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, now - window)
redis.call('ZADD', KEYS[1], 'NX', now, ARGV[4])
redis.call('PEXPIRE', KEYS[1], window)

local attempts = redis.call('ZCARD', KEYS[1])
if attempts <= limit then
  return {1, attempts, 0}
end

local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
local retry = window - (now - (tonumber(oldest[2]) or now))
if retry < 0 then retry = 0 end
return {0, attempts, retry}
`)

// SlidingWindowLimiter counts attempts per key over the last window. Sign-in
// is limited per email and IP, password reset per email.
type SlidingWindowLimiter struct {
	rdb    *redis.Client
	scope  string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewSlidingWindowLimiter(
	rdb *redis.Client,
	scope string,
	limit int,
	window time.Duration,
) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		rdb:    rdb,
		scope:  scope,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records an attempt for suffix. When it is over the limit, retryAfter
// says how long until the oldest attempt leaves the window.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, suffix string) (allowed bool, attempts int64, retryAfter time.Duration, err error) {
	const op = "redis.SlidingWindowLimiter.Allow"

	now := l.now()
	member := strconv.FormatInt(now.UnixNano(), 36) + "-" + randomHex(6)

	res, err := slidingWindow.Run(
		ctx,
		l.rdb,
		[]string{redisx.KeyRateLimit(l.scope, suffix)},
		now.UnixMilli(), l.window.Milliseconds(), l.limit, member,
	).Int64Slice()
	if err != nil {
		return false, 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	if len(res) != 3 {
		return false, 0, 0, fmt.Errorf("%s: unexpected script result %v", op, res)
	}

	return res[0] == 1, res[1], time.Duration(res[2]) * time.Millisecond, nil
}

// Reset forgets the attempts recorded for suffix, e.g. after a successful
// sign-in.
func (l *SlidingWindowLimiter) Reset(ctx context.Context, suffix string) error {
	const op = "redis.SlidingWindowLimiter.Reset"

	if err := l.rdb.Del(ctx, redisx.KeyRateLimit(l.scope, suffix)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
