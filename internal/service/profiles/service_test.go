package profiles

import (
	"context"
	"errors"
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
	profile *domain.Profile
	err     error
}

func (f *fakeRepo) Get(context.Context, uuid.UUID) (*domain.Profile, error) {
	return f.profile, f.err
}

func (f *fakeRepo) Update(_ context.Context, _ uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if upd.Name != nil {
		f.profile.Name = *upd.Name
	}
	if upd.AvatarURL != nil {
		f.profile.AvatarURL = *upd.AvatarURL
	}
	return f.profile, nil
}

type fakePublisher struct {
	events []domain.AuthEvent
}

func (p *fakePublisher) Publish(_ context.Context, ev domain.AuthEvent) error {
	p.events = append(p.events, ev)
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetProfileMissingRowIsNotAnError(t *testing.T) {
	s := New(&fakeRepo{err: repository.ErrNotFound}, nil, discard())

	p, err := s.GetProfile(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetProfileOtherFailureIsAnError(t *testing.T) {
	boom := errors.New("timeout")
	s := New(&fakeRepo{err: boom}, nil, discard())

	p, err := s.GetProfile(context.Background(), uuid.New())

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, p)
}

func TestUpdateProfileIsPartial(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{profile: &domain.Profile{UserID: id, Name: "Ana", AvatarURL: "https://a.example/1.png"}}
	events := &fakePublisher{}
	s := New(repo, events, discard())

	name := "  Ana Silva "
	p, err := s.UpdateProfile(context.Background(), id, domain.ProfileUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ana Silva", p.Name)
	assert.Equal(t, "https://a.example/1.png", p.AvatarURL)

	require.Len(t, events.events, 1)
	assert.Equal(t, domain.AuthUserUpdated, events.events[0].Type)
	assert.Equal(t, id, events.events[0].UserID)
}

func TestUpdateProfileRejectsBlankName(t *testing.T) {
	s := New(&fakeRepo{profile: &domain.Profile{}}, nil, discard())

	blank := "   "
	_, err := s.UpdateProfile(context.Background(), uuid.New(), domain.ProfileUpdate{Name: &blank})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestUpdateProfileMissingRow(t *testing.T) {
	s := New(&fakeRepo{err: repository.ErrNotFound}, nil, discard())

	_, err := s.UpdateProfile(context.Background(), uuid.New(), domain.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
