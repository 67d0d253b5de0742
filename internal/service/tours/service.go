package tours

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kirinyoku/travelease/internal/domain"
	redisx "github.com/kirinyoku/travelease/internal/redis"
	"github.com/kirinyoku/travelease/internal/repository"
	redisrepo "github.com/kirinyoku/travelease/internal/repository/redis"
)

type Repo interface {
	List(ctx context.Context) ([]domain.Tour, error)
	ListTopRated(ctx context.Context, limit int) ([]domain.Tour, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
}

type Config struct {
	// FeaturedTTL bounds how long the home page's featured list is served
	// from Redis.
	FeaturedTTL time.Duration
	Featured    int
}

type Service struct {
	repo  Repo
	cache *redisrepo.Cache
	log   *slog.Logger
	cfg   Config
}

// New builds the tour service. Only FeaturedTours goes through cache, which
// may be nil.
func New(repo Repo, cache *redisrepo.Cache, log *slog.Logger, cfg Config) *Service {
	if cfg.FeaturedTTL <= 0 {
		cfg.FeaturedTTL = 60 * time.Second
	}

	if cfg.Featured <= 0 {
		cfg.Featured = 3
	}

	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
		cfg:   cfg,
	}
}

// ListTours returns the full catalog, newest first, with one query per call.
// The catalog view filters this list in memory, so it is fetched as a whole.
func (s *Service) ListTours(ctx context.Context) ([]domain.Tour, error) {
	const op = "service.tours.ListTours"

	tours, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to fetch tours", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tours, nil
}

// GetTour retrieves a tour by its ID straight from the database, so the
// price a booking starts from is the current one.
//
// Returns:
//   - error: tours.ErrTourNotFound if no tour has this ID.
func (s *Service) GetTour(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	const op = "service.tours.GetTour"

	tour, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTourNotFound)
		}

		s.log.Error("failed to fetch tour", "op", op, "tour_id", id, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tour, nil
}

// FeaturedTours returns the configured number of top-rated tours for the home
// page.
func (s *Service) FeaturedTours(ctx context.Context) ([]domain.Tour, error) {
	const op = "service.tours.FeaturedTours"

	n := s.cfg.Featured
	tours, err := cached(ctx, s.cache, redisx.KeyFeaturedTours(n), s.cfg.FeaturedTTL,
		func(ctx context.Context) ([]domain.Tour, error) {
			return s.repo.ListTopRated(ctx, n)
		},
	)
	if err != nil {
		s.log.Error("failed to fetch featured tours", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tours, nil
}

func cached[T any](
	ctx context.Context,
	c *redisrepo.Cache,
	key string,
	ttl time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, error) {
	if c == nil {
		return loader(ctx)
	}
	return redisrepo.GetOrSetJSON(ctx, c, key, ttl, loader)
}
