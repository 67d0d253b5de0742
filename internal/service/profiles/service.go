package profiles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/repository"
)

type Repo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error)
}

type Publisher interface {
	Publish(ctx context.Context, ev domain.AuthEvent) error
}

type Service struct {
	repo   Repo
	events Publisher
	log    *slog.Logger
}

// New builds the profile service. events may be nil; when set, a successful
// update is announced as a user_updated auth event.
func New(repo Repo, events Publisher, log *slog.Logger) *Service {
	return &Service{repo: repo, events: events, log: log}
}

// GetProfile returns the user's profile, or nil with no error when the user
// has no profile row. Only other failures are errors.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	const op = "service.profiles.GetProfile"

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}

		s.log.Error("failed to fetch profile", "op", op, "user_id", userID, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// UpdateProfile applies a partial update.
//
// Returns:
//   - error: profiles.ErrEmptyName if the update sets a blank name.
//   - error: profiles.ErrProfileNotFound if the user has no profile row.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error) {
	const op = "service.profiles.UpdateProfile"

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: %w", op, ErrEmptyName)
		}
		upd.Name = &name
	}

	p, err := s.repo.Update(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
		}

		s.log.Error("failed to update profile", "op", op, "user_id", userID, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.events != nil {
		ev := domain.AuthEvent{Type: domain.AuthUserUpdated, UserID: userID, TsUnix: time.Now().Unix()}
		if err := s.events.Publish(ctx, ev); err != nil {
			s.log.Warn("failed to publish profile update", "op", op, "user_id", userID, "error", err)
		}
	}

	return p, nil
}
