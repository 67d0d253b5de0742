package bookings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kirinyoku/travelease/internal/bookingflow"
	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/mail"
	"github.com/kirinyoku/travelease/internal/metrics"
	"github.com/kirinyoku/travelease/internal/repository"
)

type Repo interface {
	Create(ctx context.Context, b domain.Booking) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.BookingWithTour, error)
}

type Service struct {
	repo   Repo
	mailer mail.Mailer
	log    *slog.Logger
}

// New builds the booking service. mailer may be nil to skip confirmation
// notices.
func New(repo Repo, mailer mail.Mailer, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		log:    log,
	}
}

// CreateBooking stores one booking. There is no deduplication: two calls with
// the same input create two bookings.
//
// Returns:
//   - error: bookings.ErrTourNotFound if the tour or user does not exist.
func (s *Service) CreateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	const op = "service.bookings.CreateBooking"

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		s.log.Error("failed to create booking", "op", op, "tour_id", b.TourID, "user_id", b.UserID, "error", err)

		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTourNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Service) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]domain.BookingWithTour, error) {
	const op = "service.bookings.ListUserBookings"

	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to fetch user bookings", "op", op, "user_id", userID, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Confirm submits the payment step: it creates the booking, then sends a
// confirmation notice. A failed notice is logged and does not undo the
// booking.
func (s *Service) Confirm(
	ctx context.Context,
	user *domain.User,
	p bookingflow.Payload,
	form bookingflow.PaymentForm,
) (bookingflow.Payload, error) {
	const op = "service.bookings.Confirm"

	next, err := bookingflow.Submit(ctx, s, user, p, form)
	if err != nil {
		if !errors.Is(err, bookingflow.ErrInvalidPayment) && !errors.Is(err, bookingflow.ErrAuthRequired) {
			metrics.IncBookingFailed()
		}
		return bookingflow.Payload{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.IncBookingCreated(string(form.Method))

	if s.mailer != nil {
		c := bookingflow.NewConfirmation(next)
		msg := mail.Message{
			To:      []string{user.Email},
			Subject: "Your TravelEase booking " + c.BookingID,
			Body: fmt.Sprintf(
				"Your booking is confirmed.\n\nTour: %s\nDate: %s\nParticipants: %d %s\nTotal: $%.2f\nBooking ID: %s\n",
				c.TourTitle,
				c.SelectedDate.Format("January 2, 2006"),
				c.Participants, c.ParticipantsLabel,
				c.Total,
				c.BookingID,
			),
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			s.log.Warn("failed to send booking notice", "op", op, "booking_id", c.BookingID, "error", err)
		}
	}

	return next, nil
}
