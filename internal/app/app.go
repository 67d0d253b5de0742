package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/kirinyoku/travelease/internal/config"
	"github.com/kirinyoku/travelease/internal/mail"
	"github.com/kirinyoku/travelease/internal/metrics"
	"github.com/kirinyoku/travelease/internal/postgres"
	redisx "github.com/kirinyoku/travelease/internal/redis"
	postgresrepo "github.com/kirinyoku/travelease/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/travelease/internal/repository/redis"
	"github.com/kirinyoku/travelease/internal/service"
	"github.com/kirinyoku/travelease/internal/service/auth"
	"github.com/kirinyoku/travelease/internal/service/tours"
	"github.com/kirinyoku/travelease/internal/session"
	httpgin "github.com/kirinyoku/travelease/internal/transport/http/gin"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
	rdb        *goredis.Client
	holder     *session.Holder
	httpServer *http.Server
}

// Infra is what both the web app and the seed tool need.
type Infra struct {
	Pool     *pgxpool.Pool
	Redis    *goredis.Client
	Store    *postgresrepo.Store
	Cache    *redisrepo.Cache
	Services *service.Services
	Mailer   mail.Mailer
	Nav      *redisrepo.NavStore
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.Pool != nil {
		i.Pool.Close()
	}
}

// NewInfra connects to Postgres and Redis, applies migrations and builds the
// services.
func NewInfra(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Infra, error) {
	const op = "app.NewInfra"

	pool, err := postgres.New(ctx, postgres.Config{DSN: cfg.Postgres.DSN(), MaxConns: cfg.Postgres.MaxConns})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to initialize postgres: %w", op, err)
	}

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb, err := redisx.New(ctx, redisx.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: failed to initialize redis: %w", op, err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(pool)
	cache := redisrepo.New(rdb)

	mailer := mail.New(mail.Config{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.SMTPUsername,
		Password: cfg.Mail.SMTPPassword,
		From:     cfg.Mail.From,
	}, logger)

	// Initialize services
	services, err := service.NewServices(service.Infra{
		Store:         store,
		Cache:         cache,
		PubSub:        redisx.NewAuthPubSub(rdb),
		Sessions:      redisrepo.NewSessionStore(rdb, cfg.Auth.SessionTTL),
		Tokens:        redisrepo.NewResetTokenStore(rdb, cfg.Auth.ResetTTL),
		SignInLimiter: redisrepo.NewSlidingWindowLimiter(rdb, "signin", cfg.Auth.SignInLimit, cfg.Auth.SignInWindow),
		ResetLimiter:  redisrepo.NewSlidingWindowLimiter(rdb, "reset", cfg.Auth.ResetLimit, cfg.Auth.ResetWindow),
		Mailer:        mailer,
	}, logger, service.Config{
		Tours: tours.Config{
			FeaturedTTL: cfg.Catalog.TTL,
			Featured:    cfg.Catalog.Featured,
		},
		Auth: auth.Config{
			BaseURL:        cfg.Server.PublicBaseURL,
			MinPasswordLen: cfg.Auth.MinPassword,
			BcryptCost:     cfg.Auth.BcryptCost,
		},
	})
	if err != nil {
		_ = rdb.Close()
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Infra{
		Pool:     pool,
		Redis:    rdb,
		Store:    store,
		Cache:    cache,
		Services: services,
		Mailer:   mailer,
		Nav:      redisrepo.NewNavStore(rdb, cfg.Auth.NavStateTTL),
	}, nil
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.New"

	infra, err := NewInfra(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	holder := session.New(infra.Services.Auth, logger, session.Config{TTL: cfg.Auth.UserCacheTTL})

	if cfg.Features.Metrics {
		metrics.Register()
	}

	// Initialize Gin router
	router := httpgin.NewRouter(httpgin.Deps{
		Tours:    infra.Services.Tours,
		Bookings: infra.Services.Bookings,
		Reviews:  infra.Services.Reviews,
		Profiles: infra.Services.Profiles,
		Password: infra.Services.Auth,
		Sessions: holder,
		Nav:      infra.Nav,
		Mailer:   infra.Mailer,
		Logger:   logger,
		Ready: func(ctx context.Context) error {
			if err := infra.Store.Ping(ctx); err != nil {
				return err
			}
			return infra.Redis.Ping(ctx).Err()
		},
		Options: httpgin.Options{
			SupportEmail:   cfg.Mail.SupportEmail,
			SessionTTL:     cfg.Auth.SessionTTL,
			SecureCookies:  cfg.Server.SecureCookies,
			MetricsEnabled: cfg.Features.Metrics,
			RoutePreview:   cfg.Features.RoutePreview,
		},
	})

	return &App{
		cfg:    cfg,
		logger: logger,
		pool:   infra.Pool,
		rdb:    infra.Redis,
		holder: holder,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves HTTP and keeps the session holder subscribed to auth events
// until ctx is cancelled or SIGINT/SIGTERM arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		_ = a.rdb.Close()
		a.pool.Close()
	}()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Auth event subscription
	g.Go(func() error {
		return a.holder.Run(gCtx)
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
