package bookingflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/travelease/internal/domain"
)

type fakeCreator struct {
	mu       sync.Mutex
	bookings []domain.Booking
	err      error
}

func (f *fakeCreator) CreateBooking(_ context.Context, b domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	f.bookings = append(f.bookings, b)

	return &b, nil
}

var (
	start = time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	user  = &domain.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana"}
)

func amalfi() domain.Tour {
	return domain.Tour{
		ID:           uuid.New(),
		Title:        "Amalfi Coast",
		Image:        "https://img.example.com/amalfi.jpg",
		Price:        1299,
		Duration:     3,
		Location:     "Amalfi, Italy",
		Rating:       4.8,
		StartDate:    start,
		MaxGroupSize: 8,
	}
}

var card = PaymentForm{
	Method:     domain.PaymentCreditCard,
	CardName:   "Ana Silva",
	CardNumber: "4242 4242 4242 4242",
	Expiry:     "12/29",
	CVV:        "123",
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 3897.0, Total(1299, 3))
	assert.Equal(t, 0.3, Total(0.1, 3))
	assert.Equal(t, 0.0, Total(1299, 0))
}

func TestTotalIsIdenticalAtEveryStep(t *testing.T) {
	tour := amalfi()
	sel := Selection{Date: start.AddDate(0, 0, 2), Participants: 3}

	quote := NewQuote(tour, sel)

	p, err := Begin(user, tour, sel)
	require.NoError(t, err)
	payment := NewPaymentView(p, domain.PaymentCreditCard)

	confirmed, err := Submit(context.Background(), &fakeCreator{}, user, p, card)
	require.NoError(t, err)
	confirmation := NewConfirmation(confirmed)

	assert.Equal(t, 3897.0, quote.Total)
	assert.Equal(t, 3897.0, payment.Total)
	assert.Equal(t, 3897.0, confirmation.Total)
}

func TestSubmitStoresTheSameTotal(t *testing.T) {
	creator := &fakeCreator{}
	p, err := Begin(user, amalfi(), Selection{Date: start, Participants: 3})
	require.NoError(t, err)

	_, err = Submit(context.Background(), creator, user, p, card)
	require.NoError(t, err)

	require.Len(t, creator.bookings, 1)
	b := creator.bookings[0]
	assert.Equal(t, 3897.0, b.TotalPrice)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, user.ID, b.UserID)
	assert.Equal(t, p.TourID, b.TourID)
	assert.Equal(t, 3, b.NumParticipants)
	assert.True(t, b.BookingDate.Equal(start))
}

func TestBeginWithoutUserAsksForAuth(t *testing.T) {
	_, err := Begin(nil, amalfi(), DefaultSelection(amalfi()))
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestBeginValidatesSelection(t *testing.T) {
	tour := amalfi()

	tests := []struct {
		name string
		sel  Selection
	}{
		{"no participants", Selection{Date: start, Participants: 0}},
		{"above group size", Selection{Date: start, Participants: 9}},
		{"before start date", Selection{Date: start.AddDate(0, 0, -1), Participants: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Begin(user, tour, tt.sel)
			assert.ErrorIs(t, err, ErrInvalidSelection)
		})
	}

	p, err := Begin(user, tour, Selection{Date: start, Participants: 8})
	require.NoError(t, err)
	assert.Equal(t, tour.ID, p.TourID)
	assert.Empty(t, p.BookingID)
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection(amalfi())

	assert.True(t, sel.Date.Equal(start))
	assert.Equal(t, 1, sel.Participants)

	q := NewQuote(amalfi(), sel)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, q.ParticipantOptions)
	assert.Equal(t, StepViewing, q.Step)
}

func TestGuards(t *testing.T) {
	withTour := &Payload{TourID: uuid.New()}
	withBooking := &Payload{TourID: uuid.New(), BookingID: uuid.NewString()}

	assert.Equal(t, RouteLogin, GuardPaying(nil, withTour))
	assert.Equal(t, RouteTours, GuardPaying(user, nil))
	assert.Equal(t, RouteTours, GuardPaying(user, &Payload{}))
	assert.Empty(t, GuardPaying(user, withTour))

	assert.Equal(t, RouteLogin, GuardConfirmed(nil, withBooking))
	assert.Equal(t, RouteTours, GuardConfirmed(user, withTour))
	assert.Equal(t, RouteTours, GuardConfirmed(user, nil))
	assert.Empty(t, GuardConfirmed(user, withBooking))
}

func TestPaymentFormValidate(t *testing.T) {
	require.NoError(t, card.Validate())
	require.NoError(t, PaymentForm{Method: domain.PaymentPayPal}.Validate())
	require.NoError(t, PaymentForm{Method: domain.PaymentBankTransfer}.Validate())

	assert.ErrorIs(t, PaymentForm{Method: "crypto"}.Validate(), ErrInvalidPayment)

	missingCVV := card
	missingCVV.CVV = " "
	err := missingCVV.Validate()
	assert.ErrorIs(t, err, ErrInvalidPayment)
	assert.Contains(t, err.Error(), "cvv")
}

func TestRepeatedSubmitBooksTwice(t *testing.T) {
	creator := &fakeCreator{}
	p, err := Begin(user, amalfi(), Selection{Date: start, Participants: 2})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Payload, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Submit(context.Background(), creator, user, p, card)
		}(i)
	}
	wg.Wait()

	require.Len(t, creator.bookings, 2)
	assert.NotEqual(t, creator.bookings[0].ID, creator.bookings[1].ID)
	assert.NotEqual(t, results[0].BookingID, results[1].BookingID)
}

func TestSubmitFailureAllowsRetry(t *testing.T) {
	creator := &fakeCreator{err: errors.New("connection reset")}
	p, err := Begin(user, amalfi(), DefaultSelection(amalfi()))
	require.NoError(t, err)

	_, err = Submit(context.Background(), creator, user, p, card)
	require.Error(t, err)
	assert.Empty(t, creator.bookings)

	creator.err = nil
	next, err := Submit(context.Background(), creator, user, p, card)
	require.NoError(t, err)
	assert.Len(t, creator.bookings, 1)
	assert.Equal(t, creator.bookings[0].ID.String(), next.BookingID)
}

func TestSubmitRejectsInvalidFormWithoutCalling(t *testing.T) {
	creator := &fakeCreator{}
	p, _ := Begin(user, amalfi(), DefaultSelection(amalfi()))

	_, err := Submit(context.Background(), creator, user, p, PaymentForm{Method: domain.PaymentCreditCard})
	assert.ErrorIs(t, err, ErrInvalidPayment)
	assert.Empty(t, creator.bookings)
}

func TestViews(t *testing.T) {
	p := Payload{TourID: uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"), Price: 500, Participants: 1, BookingID: "b-1"}

	pv := NewPaymentView(p, "")
	assert.Equal(t, domain.PaymentCreditCard, pv.Selected)
	assert.Equal(t, "TOUR-0F8FAD5B", pv.Bank.Reference)
	assert.Len(t, pv.Options, 3)

	c := NewConfirmation(p)
	assert.Equal(t, "person", c.ParticipantsLabel)
	assert.Equal(t, StepConfirmed, c.Step)

	p.Participants = 2
	assert.Equal(t, "people", NewConfirmation(p).ParticipantsLabel)
}
