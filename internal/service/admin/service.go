package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kirinyoku/travelease/internal/domain"
	postgresrepo "github.com/kirinyoku/travelease/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/travelease/internal/repository/redis"
	"github.com/kirinyoku/travelease/internal/uow"
)

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	uow   *uow.UoW
	log   *slog.Logger
}

// New builds the admin service. cache may be nil.
func New(store *postgresrepo.Store, cache *redisrepo.Cache, log *slog.Logger) *Service {
	return &Service{
		store: store,
		cache: cache,
		uow:   uow.NewUoW(store),
		log:   log,
	}
}

type SeedResult struct {
	Written int64
	Pruned  int64
}

// SeedCatalog writes the given tours in one transaction, keyed by title. With
// prune set, tours missing from the list are deleted in the same
// transaction. The catalog cache is dropped after commit.
func (s *Service) SeedCatalog(ctx context.Context, tours []domain.Tour, prune bool) (SeedResult, error) {
	const op = "service.admin.SeedCatalog"

	if len(tours) == 0 {
		return SeedResult{}, fmt.Errorf("%s: %w", op, ErrEmptyCatalog)
	}

	var res SeedResult

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		repo := s.store.Admin().With(tx)

		written, err := repo.BatchUpsertTours(ctx, tours)
		if err != nil {
			return err
		}
		res.Written = written

		if prune {
			titles := make([]string, 0, len(tours))
			for _, t := range tours {
				titles = append(titles, t.Title)
			}

			pruned, err := repo.DeleteToursNotIn(ctx, titles)
			if err != nil {
				return err
			}
			res.Pruned = pruned
		}

		after(func(ctx context.Context) {
			if s.cache == nil {
				return
			}
			if err := s.cache.InvalidateCatalog(ctx); err != nil {
				s.log.Warn("failed to invalidate catalog cache", "op", op, "error", err)
			}
		})

		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}
