// Package session keeps the process-wide view of who is signed in.
//
// A Holder caches the user behind each session token and stays subscribed to
// the auth provider's change stream for as long as Run is running. Auth events
// are applied by one goroutine; request handlers only read. A monotonically
// increasing generation is bumped by every event, and a resolution started
// before an event is discarded instead of overwriting what the event decided.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/metrics"
)

// Provider is the auth provider the holder reads from and delegates to.
type Provider interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	SignIn(ctx context.Context, email, password, rlKey string) (*domain.Session, *domain.User, error)
	SignUp(ctx context.Context, email, password, name string) (*domain.Session, *domain.User, error)
	SignOut(ctx context.Context, token string) error
	Subscribe(ctx context.Context, handler func(ctx context.Context, ev domain.AuthEvent)) error
}

type Config struct {
	// TTL bounds how long a cached user is trusted without an event.
	TTL time.Duration
	// RetryDelay is the pause before resubscribing after the stream fails.
	RetryDelay time.Duration
}

type entry struct {
	user    domain.User
	expires time.Time
}

type Holder struct {
	provider Provider
	log      *slog.Logger
	cfg      Config
	now      func() time.Time

	mu      sync.RWMutex
	users   map[string]entry
	gen     uint64
	running bool
}

func New(provider Provider, log *slog.Logger, cfg Config) *Holder {
	if cfg.TTL <= 0 {
		cfg.TTL = time.Minute
	}

	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}

	return &Holder{
		provider: provider,
		log:      log,
		cfg:      cfg,
		now:      time.Now,
		users:    make(map[string]entry),
	}
}

// Run subscribes to auth changes and applies them until ctx is done. Leaving
// Run is the unsubscribe. If the stream fails, the cache is dropped, since
// events may have been missed, and the subscription is retried.
func (h *Holder) Run(ctx context.Context) error {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		return errors.New("session.Holder.Run: already running")
	}
	h.running = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.running = false
		h.mu.Unlock()
	}()

	for {
		err := h.provider.Subscribe(ctx, h.apply)
		if ctx.Err() != nil {
			return nil
		}

		h.log.Warn("auth subscription ended, resubscribing", "error", err)
		h.reset()

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(h.cfg.RetryDelay):
		}
	}
}

// User returns the user signed in with token, or nil when there is none.
func (h *Holder) User(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	h.mu.RLock()
	e, ok := h.users[token]
	gen := h.gen
	h.mu.RUnlock()

	if ok && h.now().Before(e.expires) {
		metrics.IncSessionCache(true)
		u := e.user
		return &u, nil
	}
	metrics.IncSessionCache(false)

	user, err := h.provider.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if user == nil {
		if h.gen == gen {
			delete(h.users, token)
		}
		return nil, nil
	}

	if h.gen == gen {
		h.users[token] = entry{user: *user, expires: h.now().Add(h.cfg.TTL)}
	}

	return user, nil
}

func (h *Holder) SignIn(ctx context.Context, email, password, rlKey string) (*domain.Session, *domain.User, error) {
	sess, user, err := h.provider.SignIn(ctx, email, password, rlKey)
	if err != nil {
		return nil, nil, err
	}

	h.store(sess.Token, *user)

	return sess, user, nil
}

func (h *Holder) SignUp(ctx context.Context, email, password, name string) (*domain.Session, *domain.User, error) {
	sess, user, err := h.provider.SignUp(ctx, email, password, name)
	if err != nil {
		return nil, nil, err
	}

	h.store(sess.Token, *user)

	return sess, user, nil
}

// SignOut ends the session with the provider first. Local state is only
// cleared once that call succeeds, so a failed sign-out leaves the user
// signed in.
func (h *Holder) SignOut(ctx context.Context, token string) error {
	if err := h.provider.SignOut(ctx, token); err != nil {
		return err
	}

	h.mu.Lock()
	h.gen++
	delete(h.users, token)
	h.mu.Unlock()

	return nil
}

func (h *Holder) store(token string, user domain.User) {
	h.mu.Lock()
	h.gen++
	h.users[token] = entry{user: user, expires: h.now().Add(h.cfg.TTL)}
	h.mu.Unlock()
}

func (h *Holder) apply(_ context.Context, ev domain.AuthEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.gen++

	switch ev.Type {
	case domain.AuthSignedOut, domain.AuthSignedIn:
		// signed_in from another instance carries no user; the next read
		// resolves it.
		delete(h.users, ev.Token)
	case domain.AuthUserUpdated, domain.AuthPasswordRecovery:
		for token, e := range h.users {
			if e.user.ID == ev.UserID {
				delete(h.users, token)
			}
		}
	}
}

func (h *Holder) reset() {
	h.mu.Lock()
	h.gen++
	clear(h.users)
	h.mu.Unlock()
}
