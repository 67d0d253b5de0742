// Package bookingflow implements the three-step booking flow:
// Viewing (tour details) → Paying (payment form) → Confirmed.
//
// Nothing but the navigation Payload is handed from one step to the next.
// The total price is never carried: every step re-derives it with Total.
package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kirinyoku/travelease/internal/domain"
)

var (
	ErrAuthRequired     = errors.New("authentication required")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidPayment   = errors.New("invalid payment details")
)

type Step string

const (
	StepViewing   Step = "viewing"
	StepPaying    Step = "paying"
	StepConfirmed Step = "confirmed"
)

const (
	RouteLogin = "/login"
	RouteTours = "/tours"
)

// Total is the only place a booking total is computed. The result is rounded
// to cents.
func Total(price float64, participants int) float64 {
	return math.Round(price*float64(participants)*100) / 100
}

type Selection struct {
	Date         time.Time
	Participants int
}

// DefaultSelection mirrors the details view on first load: the tour's start
// date and a single participant.
func DefaultSelection(t domain.Tour) Selection {
	return Selection{Date: t.StartDate, Participants: 1}
}

// ValidateSelection enforces the bounds of the details view inputs. It runs
// only when entering the flow; later steps trust the carried payload.
func ValidateSelection(t domain.Tour, s Selection) error {
	if s.Participants < 1 || s.Participants > t.MaxGroupSize {
		return fmt.Errorf("%w: participants must be between 1 and %d", ErrInvalidSelection, t.MaxGroupSize)
	}

	if s.Date.Before(t.StartDate) {
		return fmt.Errorf("%w: date must not be before %s", ErrInvalidSelection, t.StartDate.Format(time.DateOnly))
	}

	return nil
}

// Payload is the navigation state carried between steps.
type Payload struct {
	TourID       uuid.UUID `json:"tour_id"`
	TourTitle    string    `json:"tour_title"`
	TourImage    string    `json:"tour_image"`
	Price        float64   `json:"price"`
	Participants int       `json:"participants"`
	SelectedDate time.Time `json:"selected_date"`
	BookingID    string    `json:"booking_id,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at,omitzero"`
}

func (p Payload) Total() float64 {
	return Total(p.Price, p.Participants)
}

// Begin moves from Viewing to Paying. Without a user the flow is not entered
// and ErrAuthRequired tells the caller to show the sign-in prompt.
func Begin(user *domain.User, t domain.Tour, s Selection) (Payload, error) {
	if user == nil {
		return Payload{}, ErrAuthRequired
	}

	if err := ValidateSelection(t, s); err != nil {
		return Payload{}, err
	}

	return Payload{
		TourID:       t.ID,
		TourTitle:    t.Title,
		TourImage:    t.Image,
		Price:        t.Price,
		Participants: s.Participants,
		SelectedDate: s.Date,
	}, nil
}

// GuardPaying returns where to send a visitor who reaches the payment step
// without what it needs, or "" when the step can render.
func GuardPaying(user *domain.User, p *Payload) string {
	if user == nil {
		return RouteLogin
	}

	if p == nil || p.TourID == uuid.Nil {
		return RouteTours
	}

	return ""
}

// GuardConfirmed is GuardPaying for the confirmation step, which also needs
// a booking id.
func GuardConfirmed(user *domain.User, p *Payload) string {
	if user == nil {
		return RouteLogin
	}

	if p == nil || p.TourID == uuid.Nil || p.BookingID == "" {
		return RouteTours
	}

	return ""
}

type PaymentForm struct {
	Method     domain.PaymentMethod `json:"payment_method"`
	CardName   string               `json:"card_name"`
	CardNumber string               `json:"card_number"`
	Expiry     string               `json:"expiry_date"`
	CVV        string               `json:"cvv"`
}

// Validate only checks that the method is known and that the card fields are
// present when paying by card. Nothing is verified against a processor.
func (f PaymentForm) Validate() error {
	if !f.Method.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidPayment, f.Method)
	}

	if f.Method != domain.PaymentCreditCard {
		return nil
	}

	required := []struct{ name, value string }{
		{"card_name", f.CardName},
		{"card_number", f.CardNumber},
		{"expiry_date", f.Expiry},
		{"cvv", f.CVV},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidPayment, r.name)
		}
	}

	return nil
}

type BookingCreator interface {
	CreateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error)
}

// Submit moves from Paying to Confirmed by creating exactly one booking.
// There is no idempotency key: submitting the same payload twice books twice.
//
// The returned payload carries the created record's id as BookingID.
func Submit(
	ctx context.Context,
	creator BookingCreator,
	user *domain.User,
	p Payload,
	form PaymentForm,
) (Payload, error) {
	const op = "bookingflow.Submit"

	if user == nil {
		return Payload{}, ErrAuthRequired
	}

	if err := form.Validate(); err != nil {
		return Payload{}, err
	}

	created, err := creator.CreateBooking(ctx, domain.Booking{
		UserID:          user.ID,
		TourID:          p.TourID,
		BookingDate:     p.SelectedDate,
		NumParticipants: p.Participants,
		TotalPrice:      p.Total(),
		Status:          domain.BookingStatusConfirmed,
	})
	if err != nil {
		return Payload{}, fmt.Errorf("%s: %w", op, err)
	}

	next := p
	next.BookingID = created.ID.String()
	next.SubmittedAt = created.CreatedAt
	if next.SubmittedAt.IsZero() {
		next.SubmittedAt = time.Now()
	}

	return next, nil
}
