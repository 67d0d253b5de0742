package tours

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/repository"
	redisrepo "github.com/kirinyoku/travelease/internal/repository/redis"
)

type fakeRepo struct {
	tours []domain.Tour
	err   error
	calls int
	limit int
}

func (f *fakeRepo) List(context.Context) ([]domain.Tour, error) {
	f.calls++
	return f.tours, f.err
}

func (f *fakeRepo) ListTopRated(_ context.Context, limit int) ([]domain.Tour, error) {
	f.calls++
	f.limit = limit
	if len(f.tours) > limit {
		return f.tours[:limit], f.err
	}
	return f.tours, f.err
}

func (f *fakeRepo) Get(_ context.Context, id uuid.UUID) (*domain.Tour, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tours {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListToursWithoutCache(t *testing.T) {
	repo := &fakeRepo{tours: []domain.Tour{{ID: uuid.New(), Title: "Kyoto"}}}
	s := New(repo, nil, discard(), Config{})

	got, err := s.ListTours(context.Background())
	require.NoError(t, err)

	assert.Equal(t, repo.tours, got)
	assert.Equal(t, 1, repo.calls)
}

func TestListToursReturnsRepoError(t *testing.T) {
	boom := errors.New("connection refused")
	s := New(&fakeRepo{err: boom}, nil, discard(), Config{})

	_, err := s.ListTours(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestGetTour(t *testing.T) {
	known := domain.Tour{ID: uuid.New(), Title: "Amalfi"}
	s := New(&fakeRepo{tours: []domain.Tour{known}}, nil, discard(), Config{})

	got, err := s.GetTour(context.Background(), known.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amalfi", got.Title)

	_, err = s.GetTour(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestFeaturedToursUsesConfiguredCount(t *testing.T) {
	repo := &fakeRepo{tours: make([]domain.Tour, 5)}
	s := New(repo, nil, discard(), Config{})

	got, err := s.FeaturedTours(context.Background())
	require.NoError(t, err)

	assert.Len(t, got, 3)
	assert.Equal(t, 3, repo.limit)
}

func newCache(t *testing.T) *redisrepo.Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return redisrepo.New(rdb)
}

func TestTourReadsAlwaysQueryTheDatabase(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{tours: []domain.Tour{{ID: id, Title: "Amalfi", Price: 1299}}}
	s := New(repo, newCache(t), discard(), Config{})
	ctx := context.Background()

	_, err := s.GetTour(ctx, id)
	require.NoError(t, err)
	_, err = s.ListTours(ctx)
	require.NoError(t, err)

	repo.tours[0].Price = 1499

	got, err := s.GetTour(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1499.0, got.Price)

	list, err := s.ListTours(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1499.0, list[0].Price)

	assert.Equal(t, 4, repo.calls)
}

func TestFeaturedToursAreCached(t *testing.T) {
	repo := &fakeRepo{tours: []domain.Tour{{ID: uuid.New(), Title: "Kyoto"}}}
	s := New(repo, newCache(t), discard(), Config{})

	for range 3 {
		got, err := s.FeaturedTours(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Kyoto", got[0].Title)
	}

	assert.Equal(t, 1, repo.calls)
}
