package reviews

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/repository"
)

type fakeRepo struct {
	created []domain.Review
	err     error
}

func (f *fakeRepo) Create(_ context.Context, r domain.Review) (*domain.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	r.ID = uuid.New()
	f.created = append(f.created, r)
	return &r, nil
}

func (f *fakeRepo) ListByTour(context.Context, uuid.UUID) ([]domain.ReviewWithAuthor, error) {
	return nil, f.err
}

func TestCreateReview(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, rating := range []int{0, 6} {
		_, err := s.CreateReview(context.Background(), domain.Review{Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
	assert.Empty(t, repo.created)

	got, err := s.CreateReview(context.Background(), domain.Review{Rating: 5, Comment: "  Lovely  "})
	require.NoError(t, err)
	assert.Equal(t, "Lovely", got.Comment)

	repo.err = repository.ErrNotFound
	_, err = s.CreateReview(context.Background(), domain.Review{Rating: 4})
	assert.ErrorIs(t, err, ErrTourNotFound)
}
