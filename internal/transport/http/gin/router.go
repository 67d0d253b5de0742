package httpgin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kirinyoku/travelease/internal/bookingflow"
	"github.com/kirinyoku/travelease/internal/catalog"
	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/mail"
	"github.com/kirinyoku/travelease/internal/service/auth"
	"github.com/kirinyoku/travelease/internal/service/bookings"
	"github.com/kirinyoku/travelease/internal/service/profiles"
	"github.com/kirinyoku/travelease/internal/service/reviews"
	"github.com/kirinyoku/travelease/internal/service/tours"
)

const genericErrorMessage = "Something went wrong. Please try again."

type ToursService interface {
	ListTours(ctx context.Context) ([]domain.Tour, error)
	GetTour(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	FeaturedTours(ctx context.Context) ([]domain.Tour, error)
}

type BookingsService interface {
	Confirm(ctx context.Context, user *domain.User, p bookingflow.Payload, form bookingflow.PaymentForm) (bookingflow.Payload, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]domain.BookingWithTour, error)
}

type ReviewsService interface {
	CreateReview(ctx context.Context, r domain.Review) (*domain.Review, error)
	ListTourReviews(ctx context.Context, tourID uuid.UUID) ([]domain.ReviewWithAuthor, error)
}

type ProfilesService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error)
}

type PasswordService interface {
	ResetPassword(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, token, newPassword string) error
}

// SessionService is the session holder seen from the HTTP layer.
type SessionService interface {
	UserResolver
	SignIn(ctx context.Context, email, password, rlKey string) (*domain.Session, *domain.User, error)
	SignUp(ctx context.Context, email, password, name string) (*domain.Session, *domain.User, error)
	SignOut(ctx context.Context, token string) error
}

// NavState hands booking flow payloads from one view to the next.
type NavState interface {
	Save(ctx context.Context, v any) (string, error)
	Load(ctx context.Context, id string, dst any) (bool, error)
}

type Options struct {
	SupportEmail   string
	SessionTTL     time.Duration
	SecureCookies  bool
	MetricsEnabled bool
	RoutePreview   bool
}

type Deps struct {
	Tours    ToursService
	Bookings BookingsService
	Reviews  ReviewsService
	Profiles ProfilesService
	Password PasswordService
	Sessions SessionService
	Nav      NavState
	Mailer   mail.Mailer
	Logger   *slog.Logger
	Options  Options

	// Ready reports whether backing stores answer. Nil means always ready.
	Ready func(ctx context.Context) error

	// Now defaults to time.Now.
	Now func() time.Time
}

func NewRouter(d Deps, middlewares ...gin.HandlerFunc) *gin.Engine {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(d.Logger), RequestIDMiddleware(), CORS(), SessionMiddleware(d.Sessions))
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/readyz", handleReady(d))

	if d.Options.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/", handleHome(d))
	r.GET("/about", handleAbout())
	r.GET("/contact", handleContactPage(d))
	r.POST("/contact", handleContact(d))

	// auth
	r.GET("/login", handleLoginPage())
	r.POST("/login", handleLogin(d))
	r.GET("/signup", handleSignupPage())
	r.POST("/signup", handleSignup(d))
	r.GET("/forgot-password", handleForgotPasswordPage())
	r.POST("/forgot-password", handleForgotPassword(d))
	r.GET("/reset-password", handleResetPasswordPage())
	r.POST("/reset-password", handleResetPassword(d))
	r.POST("/logout", handleLogout(d))

	r.GET("/profile", handleProfile(d))
	r.PATCH("/profile", handleUpdateProfile(d))

	// catalog
	r.GET("/tours", handleListTours(d))
	r.GET("/tours/:id", handleTourDetails(d))
	r.POST("/tours/:id/book", handleBeginBooking(d))
	r.POST("/tours/:id/reviews", handleCreateReview(d))

	// booking flow
	r.GET("/booking/confirmation", handleConfirmation(d))
	r.GET("/booking/confirmation/receipt", handleReceipt(d))
	r.GET("/booking/:tourId", handlePaymentPage(d))
	r.POST("/booking/:tourId", handleSubmitPayment(d))

	if d.Options.RoutePreview {
		r.GET("/_routes", handleRoutes(r))
	}

	return r
}

// @Summary  List registered routes
// @Success  200  {array}  RouteInfo
// @Router   /_routes [get]
func handleRoutes(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		out := make([]RouteInfo, 0, len(routes))
		for _, rt := range routes {
			out = append(out, RouteInfo{Method: rt.Method, Path: rt.Path})
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Readiness of Postgres and Redis
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  ErrorResponse
// @Router   /readyz [get]
func handleReady(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d.Ready != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := d.Ready(ctx); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "not ready"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// --- Helpers ---

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "tour not found"})
		return uuid.Nil, false
	}
	return id, true
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func seeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// safeRedirect keeps post-login redirects on this site.
func safeRedirect(target, def string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return def
	}
	return target
}

var badRequestErrors = []error{
	catalog.ErrInvalidFilter,
	bookingflow.ErrInvalidSelection,
	bookingflow.ErrInvalidPayment,
	reviews.ErrInvalidRating,
	auth.ErrInvalidEmail,
	auth.ErrWeakPassword,
	auth.ErrInvalidResetToken,
}

// clientMessage drops the op prefixes in front of sentinel and keeps any
// detail that follows it.
func clientMessage(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return sentinel.Error()
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var rl auth.RateLimitedError

	switch {
	// catalog and booking flow
	case errors.Is(err, tours.ErrTourNotFound),
		errors.Is(err, reviews.ErrTourNotFound),
		errors.Is(err, bookings.ErrTourNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "tour not found"})
		return
	// profiles
	case errors.Is(err, profiles.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		return
	case errors.Is(err, profiles.ErrEmptyName):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name must not be empty"})
		return
	// auth
	case errors.As(err, &rl):
		secs := int(rl.RetryAfter.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		c.Header("Retry-After", strconv.Itoa(secs))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: rl.Error()})
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
		return
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
		return
	case errors.Is(err, bookingflow.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "please sign in to continue"})
		return
	}

	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			badRequest(c, clientMessage(err, sentinel))
			return
		}
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: genericErrorMessage})
}
