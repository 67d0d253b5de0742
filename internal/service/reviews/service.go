package reviews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/repository"
)

type Repo interface {
	Create(ctx context.Context, r domain.Review) (*domain.Review, error)
	ListByTour(ctx context.Context, tourID uuid.UUID) ([]domain.ReviewWithAuthor, error)
}

type Service struct {
	repo Repo
	log  *slog.Logger
}

func New(repo Repo, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CreateReview stores a review of a tour.
//
// Returns:
//   - error: reviews.ErrInvalidRating if the rating is outside 1..5.
//   - error: reviews.ErrTourNotFound if the tour does not exist.
func (s *Service) CreateReview(ctx context.Context, r domain.Review) (*domain.Review, error) {
	const op = "service.reviews.CreateReview"

	if r.Rating < 1 || r.Rating > 5 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRating)
	}
	r.Comment = strings.TrimSpace(r.Comment)

	created, err := s.repo.Create(ctx, r)
	if err != nil {
		s.log.Error("failed to create review", "op", op, "tour_id", r.TourID, "error", err)

		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTourNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Service) ListTourReviews(ctx context.Context, tourID uuid.UUID) ([]domain.ReviewWithAuthor, error) {
	const op = "service.reviews.ListTourReviews"

	out, err := s.repo.ListByTour(ctx, tourID)
	if err != nil {
		s.log.Error("failed to fetch reviews", "op", op, "tour_id", tourID, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
