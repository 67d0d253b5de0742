package service

import (
	"fmt"
	"log/slog"

	"github.com/kirinyoku/travelease/internal/mail"
	redisx "github.com/kirinyoku/travelease/internal/redis"
	postgresrepo "github.com/kirinyoku/travelease/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/travelease/internal/repository/redis"
	"github.com/kirinyoku/travelease/internal/service/admin"
	"github.com/kirinyoku/travelease/internal/service/auth"
	"github.com/kirinyoku/travelease/internal/service/bookings"
	"github.com/kirinyoku/travelease/internal/service/profiles"
	"github.com/kirinyoku/travelease/internal/service/reviews"
	"github.com/kirinyoku/travelease/internal/service/tours"
)

type Services struct {
	Tours    *tours.Service
	Bookings *bookings.Service
	Reviews  *reviews.Service
	Profiles *profiles.Service
	Auth     *auth.Service
	Admin    *admin.Service
}

type Config struct {
	Tours tours.Config
	Auth  auth.Config
}

type Infra struct {
	Store         *postgresrepo.Store
	Cache         *redisrepo.Cache
	PubSub        *redisx.AuthPubSub
	Sessions      *redisrepo.SessionStore
	Tokens        *redisrepo.ResetTokenStore
	SignInLimiter *redisrepo.SlidingWindowLimiter
	ResetLimiter  *redisrepo.SlidingWindowLimiter
	Mailer        mail.Mailer
}

func NewServices(infra Infra, log *slog.Logger, cfg Config) (*Services, error) {
	const op = "service.NewServices"

	authSvc, err := auth.New(auth.Deps{
		Accounts:      auth.NewPostgresAccounts(infra.Store),
		Sessions:      infra.Sessions,
		Tokens:        infra.Tokens,
		Events:        infra.PubSub,
		Mailer:        infra.Mailer,
		SignInLimiter: infra.SignInLimiter,
		ResetLimiter:  infra.ResetLimiter,
	}, log, cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Services{
		Tours:    tours.New(infra.Store.Tours(), infra.Cache, log, cfg.Tours),
		Bookings: bookings.New(infra.Store.Bookings(), infra.Mailer, log),
		Reviews:  reviews.New(infra.Store.Reviews(), log),
		Profiles: profiles.New(infra.Store.Profiles(), infra.PubSub, log),
		Auth:     authSvc,
		Admin:    admin.New(infra.Store, infra.Cache, log),
	}, nil
}
