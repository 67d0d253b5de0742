package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/mail"
	"github.com/kirinyoku/travelease/internal/repository"
	postgresrepo "github.com/kirinyoku/travelease/internal/repository/postgres"
)

type fakeAccounts struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*postgresrepo.Credentials
	err  error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byID: map[uuid.UUID]*postgresrepo.Credentials{}}
}

func (f *fakeAccounts) CreateAccount(_ context.Context, id uuid.UUID, email string, hash []byte, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	for _, c := range f.byID {
		if c.User.Email == email {
			return repository.ErrConflict
		}
	}
	f.byID[id] = &postgresrepo.Credentials{User: domain.User{ID: id, Email: email, Name: name}, PasswordHash: hash}
	return nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*postgresrepo.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.byID {
		if c.User.Email == strings.ToLower(email) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAccounts) GetByID(_ context.Context, id uuid.UUID) (*postgresrepo.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeAccounts) UpdatePassword(_ context.Context, id uuid.UUID, hash []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.PasswordHash = hash
	return nil
}

type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	err      error
}

func (f *fakeSessions) Create(_ context.Context, userID uuid.UUID) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	s := domain.Session{Token: uuid.NewString(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}
	f.sessions[s.Token] = s
	return &s, nil
}

func (f *fakeSessions) Get(_ context.Context, token string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[token]
	if !ok {
		return nil, repository.ErrNoSession
	}
	return &s, nil
}

func (f *fakeSessions) Delete(ctx context.Context, token string) (*domain.Session, error) {
	s, err := f.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	delete(f.sessions, token)
	f.mu.Unlock()
	return s, nil
}

func (f *fakeSessions) DeleteAllForUser(_ context.Context, userID uuid.UUID) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for t, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, t)
			delete(f.sessions, t)
		}
	}
	return out, nil
}

type fakeTokens struct {
	tokens map[string]uuid.UUID
}

func (f *fakeTokens) Issue(_ context.Context, userID uuid.UUID) (string, error) {
	t := "tok-" + uuid.NewString()
	f.tokens[t] = userID
	return t, nil
}

func (f *fakeTokens) Consume(_ context.Context, token string) (uuid.UUID, error) {
	id, ok := f.tokens[token]
	if !ok {
		return uuid.Nil, repository.ErrNoToken
	}
	delete(f.tokens, token)
	return id, nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (f *fakeEvents) Publish(_ context.Context, ev domain.AuthEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeEvents) Subscribe(ctx context.Context, _ func(context.Context, domain.AuthEvent)) error {
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeEvents) types() []domain.AuthEventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.AuthEventType, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fakeLimiter struct {
	allow  bool
	resets []string
}

func (l *fakeLimiter) Allow(context.Context, string) (bool, int64, time.Duration, error) {
	return l.allow, 1, 30 * time.Second, nil
}

func (l *fakeLimiter) Reset(_ context.Context, suffix string) error {
	l.resets = append(l.resets, suffix)
	return nil
}

type fixture struct {
	svc      *Service
	accounts *fakeAccounts
	sessions *fakeSessions
	tokens   *fakeTokens
	events   *fakeEvents
	mailer   *fakeMailer
	limiter  *fakeLimiter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		accounts: newFakeAccounts(),
		sessions: &fakeSessions{sessions: map[string]domain.Session{}},
		tokens:   &fakeTokens{tokens: map[string]uuid.UUID{}},
		events:   &fakeEvents{},
		mailer:   &fakeMailer{},
		limiter:  &fakeLimiter{allow: true},
	}

	svc, err := New(Deps{
		Accounts:      f.accounts,
		Sessions:      f.sessions,
		Tokens:        f.tokens,
		Events:        f.events,
		Mailer:        f.mailer,
		SignInLimiter: f.limiter,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), Config{
		BaseURL:    "https://travelease.test/",
		BcryptCost: bcrypt.MinCost,
	})
	require.NoError(t, err)
	f.svc = svc

	return f
}

func TestSignUpThenSignIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, user, err := f.svc.SignUp(ctx, " Ana@Example.com ", "secret1", "Ana")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, user.ID, sess.UserID)

	current, err := f.svc.CurrentUser(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)

	sess2, _, err := f.svc.SignIn(ctx, "ana@example.com", "secret1", "ana@example.com|127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, sess.Token, sess2.Token)
	assert.Equal(t, []string{"ana@example.com|127.0.0.1"}, f.limiter.resets)

	assert.Equal(t, []domain.AuthEventType{domain.AuthSignedIn, domain.AuthSignedIn}, f.events.types())
}

func TestSignUpValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.SignUp(ctx, "not-an-email", "secret1", "")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, _, err = f.svc.SignUp(ctx, "ana@example.com", "123", "")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, _, err = f.svc.SignUp(ctx, "ana@example.com", "secret1", "")
	require.NoError(t, err)
	_, _, err = f.svc.SignUp(ctx, "ANA@example.com", "secret2", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.SignUp(ctx, "ana@example.com", "secret1", "")
	require.NoError(t, err)

	_, _, err = f.svc.SignIn(ctx, "ana@example.com", "wrong!!", "k")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = f.svc.SignIn(ctx, "nobody@example.com", "secret1", "k")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Empty(t, f.limiter.resets)
}

func TestSignInRateLimited(t *testing.T) {
	f := newFixture(t)
	f.limiter.allow = false

	_, _, err := f.svc.SignIn(context.Background(), "ana@example.com", "secret1", "k")

	var rl RateLimitedError
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 30*time.Second, rl.RetryAfter)
}

func TestSignOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, _, err := f.svc.SignUp(ctx, "ana@example.com", "secret1", "")
	require.NoError(t, err)

	require.NoError(t, f.svc.SignOut(ctx, sess.Token))

	user, err := f.svc.CurrentUser(ctx, sess.Token)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, f.svc.SignOut(ctx, sess.Token))
	assert.Equal(t, []domain.AuthEventType{domain.AuthSignedIn, domain.AuthSignedOut}, f.events.types())
}

func TestSignOutSurfacesStoreFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("redis down")
	f.sessions.err = boom

	assert.ErrorIs(t, f.svc.SignOut(context.Background(), "t"), boom)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, _, err := f.svc.SignUp(ctx, "ana@example.com", "secret1", "")
	require.NoError(t, err)

	require.NoError(t, f.svc.ResetPassword(ctx, "ana@example.com"))
	require.Len(t, f.mailer.sent, 1)

	body := f.mailer.sent[0].Body
	i := strings.Index(body, "https://travelease.test/reset-password?token=")
	require.GreaterOrEqual(t, i, 0, body)

	var token string
	for tok := range f.tokens.tokens {
		token = tok
	}
	assert.Contains(t, body, token)

	require.NoError(t, f.svc.CompletePasswordReset(ctx, token, "new-secret"))

	_, _, err = f.svc.SignIn(ctx, "ana@example.com", "secret1", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.svc.SignIn(ctx, "ana@example.com", "new-secret", "")
	require.NoError(t, err)

	user, err := f.svc.CurrentUser(ctx, sess.Token)
	require.NoError(t, err)
	assert.Nil(t, user, "old sessions are revoked")

	err = f.svc.CompletePasswordReset(ctx, token, "another-one")
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	assert.Contains(t, f.events.types(), domain.AuthPasswordRecovery)
}

func TestResetPasswordUnknownEmailIsSilent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.ResetPassword(context.Background(), "nobody@example.com"))
	assert.Empty(t, f.mailer.sent)
}

func TestResetPasswordMailFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, err := f.svc.SignUp(ctx, "ana@example.com", "secret1", "")
	require.NoError(t, err)

	boom := errors.New("smtp down")
	f.mailer.err = boom

	assert.ErrorIs(t, f.svc.ResetPassword(ctx, "ana@example.com"), boom)
}
