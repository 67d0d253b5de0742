package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Mail     MailConfig
	Catalog  CatalogConfig
	Features FeaturesConfig
	LogLevel slog.Level
}

type ServerConfig struct {
	Host string
	Port int
	// PublicBaseURL is where the site is reachable from the outside; reset
	// links point there.
	PublicBaseURL string
	SecureCookies bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PostgresConfig struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string
	MaxConns int32
}

func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

type AuthConfig struct {
	SessionTTL   time.Duration
	ResetTTL     time.Duration
	NavStateTTL  time.Duration
	UserCacheTTL time.Duration
	SignInLimit  int
	SignInWindow time.Duration
	ResetLimit   int
	ResetWindow  time.Duration
	MinPassword  int
	BcryptCost   int
}

type MailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	From         string
	SupportEmail string
}

type CatalogConfig struct {
	TTL      time.Duration
	Featured int
}

type FeaturesConfig struct {
	RoutePreview bool
	Metrics      bool
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	r := reader{}

	serverPort := r.int("SERVER_PORT", 8080)
	serverCfg := ServerConfig{
		Host:          r.string("SERVER_HOST", "localhost"),
		Port:          serverPort,
		PublicBaseURL: strings.TrimRight(r.string("PUBLIC_BASE_URL", fmt.Sprintf("http://localhost:%d", serverPort)), "/"),
		SecureCookies: r.bool("SECURE_COOKIES", false),
	}

	postgresCfg := PostgresConfig{
		User:     r.required("POSTGRES_USER"),
		Password: r.required("POSTGRES_PASSWORD"),
		Name:     r.required("POSTGRES_DB"),
		Host:     r.string("POSTGRES_HOST", "localhost"),
		Port:     r.int("POSTGRES_PORT", 5432),
		SSLMode:  r.string("POSTGRES_SSLMODE", "disable"),
		MaxConns: int32(r.int("POSTGRES_MAX_CONNS", 0)),
	}

	redisCfg := RedisConfig{
		Addr:     r.string("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       r.int("REDIS_DB", 0),
	}

	authCfg := AuthConfig{
		SessionTTL:   r.duration("AUTH_SESSION_TTL", 7*24*time.Hour),
		ResetTTL:     r.duration("AUTH_RESET_TTL", time.Hour),
		NavStateTTL:  r.duration("NAV_STATE_TTL", 30*time.Minute),
		UserCacheTTL: r.duration("AUTH_USER_CACHE_TTL", time.Minute),
		SignInLimit:  r.int("AUTH_SIGNIN_LIMIT", 10),
		SignInWindow: r.duration("AUTH_SIGNIN_WINDOW", 15*time.Minute),
		ResetLimit:   r.int("AUTH_RESET_LIMIT", 3),
		ResetWindow:  r.duration("AUTH_RESET_WINDOW", time.Hour),
		MinPassword:  r.int("AUTH_MIN_PASSWORD", 6),
		BcryptCost:   r.int("AUTH_BCRYPT_COST", 0),
	}

	mailCfg := MailConfig{
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     r.int("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		From:         r.string("SMTP_FROM", "TravelEase <no-reply@travelease.local>"),
		SupportEmail: r.string("SUPPORT_EMAIL", "support@travelease.local"),
	}

	catalogCfg := CatalogConfig{
		TTL:      r.duration("CATALOG_TTL", time.Minute),
		Featured: r.int("CATALOG_FEATURED", 3),
	}

	featuresCfg := FeaturesConfig{
		RoutePreview: r.bool("ROUTE_PREVIEW_ENABLED", false),
		Metrics:      r.bool("METRICS_ENABLED", true),
	}

	logLevel := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			r.errs = append(r.errs, fmt.Errorf("invalid LOG_LEVEL: %w", err))
		}
	}

	if r.errs != nil {
		return nil, fmt.Errorf("%s: %w", op, r.errs[0])
	}

	if authCfg.SignInLimit <= 0 || authCfg.ResetLimit <= 0 {
		return nil, fmt.Errorf("%s: rate limits must be positive", op)
	}

	return &Config{
		Server:   serverCfg,
		Postgres: postgresCfg,
		Redis:    redisCfg,
		Auth:     authCfg,
		Mail:     mailCfg,
		Catalog:  catalogCfg,
		Features: featuresCfg,
		LogLevel: logLevel,
	}, nil
}

// reader collects the first parse errors instead of failing on each lookup.
type reader struct {
	errs []error
}

func (r *reader) string(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (r *reader) required(key string) string {
	v := os.Getenv(key)
	if v == "" {
		r.errs = append(r.errs, fmt.Errorf("missing %s", key))
	}
	return v
}

func (r *reader) int(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (r *reader) bool(key string, def bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return def
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}
