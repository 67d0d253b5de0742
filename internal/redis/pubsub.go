package redisx

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kirinyoku/travelease/internal/domain"
)

// AuthPubSub fans session changes out to every process holding a session
// view. Delivery is at most once: a subscriber that is not connected misses
// the event.
type AuthPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewAuthPubSub(rdb *redis.Client) *AuthPubSub {
	return &AuthPubSub{
		rdb:     rdb,
		channel: ChannelAuthEvents(),
	}
}

func (p *AuthPubSub) Publish(ctx context.Context, ev domain.AuthEvent) error {
	const op = "redisx.AuthPubSub.Publish"

	if ev.TsUnix == 0 {
		ev.TsUnix = time.Now().Unix()
	}

	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := p.rdb.Publish(ctx, p.channel, b).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Subscribe blocks, calling handler for every event, until ctx is done. The
// subscription is confirmed before the first message is read so events
// published after Subscribe has been entered are not lost.
func (p *AuthPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, ev domain.AuthEvent)) error {
	const op = "redisx.AuthPubSub.Subscribe"

	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev domain.AuthEvent
			if err := json.Unmarshal([]byte(m.Payload), &ev); err == nil && ev.Type != "" {
				handler(ctx, ev)
			}
		}
	}
}
