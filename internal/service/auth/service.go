// Package auth is the identity provider: accounts in Postgres, sessions and
// reset tokens in Redis, and session changes broadcast over Redis pub/sub.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	netmail "net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/mail"
	"github.com/kirinyoku/travelease/internal/metrics"
	"github.com/kirinyoku/travelease/internal/repository"
)

type Sessions interface {
	Create(ctx context.Context, userID uuid.UUID) (*domain.Session, error)
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) (*domain.Session, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type ResetTokens interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}

type Events interface {
	Publish(ctx context.Context, ev domain.AuthEvent) error
	Subscribe(ctx context.Context, handler func(ctx context.Context, ev domain.AuthEvent)) error
}

type Limiter interface {
	Allow(ctx context.Context, suffix string) (bool, int64, time.Duration, error)
	Reset(ctx context.Context, suffix string) error
}

type Deps struct {
	Accounts Accounts
	Sessions Sessions
	Tokens   ResetTokens
	Events   Events
	Mailer   mail.Mailer
	// SignInLimiter and ResetLimiter may be nil to disable rate limiting.
	SignInLimiter Limiter
	ResetLimiter  Limiter
}

type Config struct {
	BaseURL        string
	MinPasswordLen int
	BcryptCost     int
}

type Service struct {
	deps Deps
	log  *slog.Logger
	cfg  Config

	// dummyHash is compared against when the email is unknown, so a miss costs
	// the same as a wrong password.
	dummyHash []byte
}

func New(deps Deps, log *slog.Logger, cfg Config) (*Service, error) {
	const op = "service.auth.New"

	if cfg.MinPasswordLen <= 0 {
		cfg.MinPasswordLen = 6
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	dummy, err := bcrypt.GenerateFromPassword([]byte("travelease-dummy-password"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Service{deps: deps, log: log, cfg: cfg, dummyHash: dummy}, nil
}

// SignUp registers a user and signs them in.
//
// Returns:
//   - error: auth.ErrInvalidEmail, auth.ErrWeakPassword on bad input.
//   - error: auth.ErrEmailTaken if the email is already registered.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (*domain.Session, *domain.User, error) {
	const op = "service.auth.SignUp"

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(password) < s.cfg.MinPasswordLen {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	user := domain.User{ID: uuid.New(), Email: email, Name: strings.TrimSpace(name)}

	if err := s.deps.Accounts.CreateAccount(ctx, user.ID, user.Email, hash, user.Name); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		s.log.Error("failed to create account", "op", op, "error", err)
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	sess, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return sess, &user, nil
}

// SignIn checks the password and opens a session. rlKey scopes the attempt
// counter; an empty key skips rate limiting.
//
// Returns:
//   - error: auth.ErrInvalidCredentials for an unknown email or wrong password.
//   - error: auth.RateLimitedError when there were too many attempts.
func (s *Service) SignIn(ctx context.Context, email, password, rlKey string) (*domain.Session, *domain.User, error) {
	const op = "service.auth.SignIn"

	if err := allow(ctx, s.deps.SignInLimiter, rlKey); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	creds, err := s.deps.Accounts.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		s.log.Error("failed to load account", "op", op, "error", err)
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(creds.PasswordHash, []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if s.deps.SignInLimiter != nil && rlKey != "" {
		if err := s.deps.SignInLimiter.Reset(ctx, rlKey); err != nil {
			s.log.Warn("failed to reset sign-in limiter", "op", op, "error", err)
		}
	}

	sess, err := s.startSession(ctx, creds.User.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	user := creds.User
	return sess, &user, nil
}

// SignOut ends a session. Signing out a token that is already gone succeeds.
func (s *Service) SignOut(ctx context.Context, token string) error {
	const op = "service.auth.SignOut"

	sess, err := s.deps.Sessions.Delete(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return nil
		}

		s.log.Error("failed to delete session", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.AuthEvent{Type: domain.AuthSignedOut, Token: token, UserID: sess.UserID})

	return nil
}

// CurrentUser resolves a session token. It returns nil with no error when the
// token has no live session.
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	const op = "service.auth.CurrentUser"

	sess, err := s.deps.Sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	creds, err := s.deps.Accounts.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := creds.User
	return &user, nil
}

// ResetPassword mails a single-use reset link. An unknown email succeeds
// without sending anything, so the endpoint does not reveal which emails are
// registered.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	const op = "service.auth.ResetPassword"

	email, err := normalizeEmail(email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := allow(ctx, s.deps.ResetLimiter, email); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	creds, err := s.deps.Accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		s.log.Error("failed to load account", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.deps.Tokens.Issue(ctx, creds.User.ID)
	if err != nil {
		s.log.Error("failed to issue reset token", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	link := s.cfg.BaseURL + "/reset-password?token=" + url.QueryEscape(token)

	msg := mail.Message{
		To:      []string{creds.User.Email},
		Subject: "Reset your TravelEase password",
		Body: "We received a request to reset your password.\n\n" +
			"Open this link to choose a new one:\n" + link + "\n\n" +
			"If you did not ask for this, you can ignore this email.\n",
	}
	if err := s.deps.Mailer.Send(ctx, msg); err != nil {
		s.log.Error("failed to send reset email", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CompletePasswordReset sets a new password using a reset token and signs the
// user out everywhere.
//
// Returns:
//   - error: auth.ErrInvalidResetToken if the token is unknown, used or expired.
//   - error: auth.ErrWeakPassword if the new password is too short.
func (s *Service) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	const op = "service.auth.CompletePasswordReset"

	if len(newPassword) < s.cfg.MinPasswordLen {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	userID, err := s.deps.Tokens.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNoToken) {
			return fmt.Errorf("%s: %w", op, ErrInvalidResetToken)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.deps.Accounts.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidResetToken)
		}

		s.log.Error("failed to update password", "op", op, "user_id", userID, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, domain.AuthEvent{Type: domain.AuthPasswordRecovery, UserID: userID})

	tokens, err := s.deps.Sessions.DeleteAllForUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to revoke sessions", "op", op, "user_id", userID, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, t := range tokens {
		s.publish(ctx, domain.AuthEvent{Type: domain.AuthSignedOut, Token: t, UserID: userID})
	}

	return nil
}

// Subscribe streams auth state changes until ctx is done.
func (s *Service) Subscribe(ctx context.Context, handler func(ctx context.Context, ev domain.AuthEvent)) error {
	return s.deps.Events.Subscribe(ctx, handler)
}

func (s *Service) startSession(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	sess, err := s.deps.Sessions.Create(ctx, userID)
	if err != nil {
		s.log.Error("failed to create session", "user_id", userID, "error", err)
		return nil, err
	}

	s.publish(ctx, domain.AuthEvent{Type: domain.AuthSignedIn, Token: sess.Token, UserID: userID})

	return sess, nil
}

func (s *Service) publish(ctx context.Context, ev domain.AuthEvent) {
	metrics.IncAuthEvent(string(ev.Type))

	if ev.TsUnix == 0 {
		ev.TsUnix = time.Now().Unix()
	}

	if err := s.deps.Events.Publish(ctx, ev); err != nil {
		s.log.Warn("failed to publish auth event", "type", ev.Type, "user_id", ev.UserID, "error", err)
	}
}

func allow(ctx context.Context, l Limiter, key string) error {
	if l == nil || key == "" {
		return nil
	}

	ok, _, retry, err := l.Allow(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return RateLimitedError{RetryAfter: retry}
	}

	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	addr, err := netmail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}

	return email, nil
}
