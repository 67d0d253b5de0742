package bookingflow

import (
	"strings"
	"time"

	"github.com/kirinyoku/travelease/internal/domain"
)

// Quote is the price box of the details view.
type Quote struct {
	Step               Step      `json:"step"`
	PricePerPerson     float64   `json:"price_per_person"`
	Participants       int       `json:"participants"`
	SelectedDate       time.Time `json:"selected_date"`
	MinDate            time.Time `json:"min_date"`
	ParticipantOptions []int     `json:"participant_options"`
	Total              float64   `json:"total"`
}

func NewQuote(t domain.Tour, s Selection) Quote {
	opts := make([]int, 0, t.MaxGroupSize)
	for i := 1; i <= t.MaxGroupSize; i++ {
		opts = append(opts, i)
	}

	return Quote{
		Step:               StepViewing,
		PricePerPerson:     t.Price,
		Participants:       s.Participants,
		SelectedDate:       s.Date,
		MinDate:            t.StartDate,
		ParticipantOptions: opts,
		Total:              Total(t.Price, s.Participants),
	}
}

type PaymentOption struct {
	Method domain.PaymentMethod `json:"method"`
	Label  string               `json:"label"`
	Fields []string             `json:"fields,omitempty"`
	Note   string               `json:"note,omitempty"`
}

type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	SortCode      string `json:"sort_code"`
	Reference     string `json:"reference"`
}

// PaymentView is the payment step: the carried booking summary and the three
// cosmetic payment choices.
type PaymentView struct {
	Step     Step                 `json:"step"`
	Booking  Payload              `json:"booking"`
	Total    float64              `json:"total"`
	Selected domain.PaymentMethod `json:"selected_method"`
	Options  []PaymentOption      `json:"payment_options"`
	Bank     BankDetails          `json:"bank_transfer"`
	Error    string               `json:"error,omitempty"`
}

func NewPaymentView(p Payload, selected domain.PaymentMethod) PaymentView {
	if !selected.Valid() {
		selected = domain.PaymentCreditCard
	}

	ref := p.TourID.String()
	if len(ref) > 8 {
		ref = ref[:8]
	}

	return PaymentView{
		Step:     StepPaying,
		Booking:  p,
		Total:    p.Total(),
		Selected: selected,
		Options: []PaymentOption{
			{
				Method: domain.PaymentCreditCard,
				Label:  "Credit Card",
				Fields: []string{"card_name", "card_number", "expiry_date", "cvv"},
			},
			{
				Method: domain.PaymentPayPal,
				Label:  "PayPal",
				Note:   `You will be redirected to PayPal to complete your payment. Click "Complete Booking" to proceed.`,
			},
			{
				Method: domain.PaymentBankTransfer,
				Label:  "Bank Transfer",
				Note:   "Please use the following details for bank transfer.",
			},
		},
		Bank: BankDetails{
			BankName:      "Global Bank",
			AccountName:   "TravelEase Ltd",
			AccountNumber: "1234567890",
			SortCode:      "12-34-56",
			Reference:     "TOUR-" + strings.ToUpper(ref),
		},
	}
}

type Confirmation struct {
	Step              Step      `json:"step"`
	BookingID         string    `json:"booking_id"`
	TourID            string    `json:"tour_id"`
	TourTitle         string    `json:"tour_title"`
	TourImage         string    `json:"tour_image"`
	SelectedDate      time.Time `json:"selected_date"`
	Participants      int       `json:"participants"`
	ParticipantsLabel string    `json:"participants_label"`
	Total             float64   `json:"total"`
	SubmittedAt       time.Time `json:"submitted_at"`
}

func NewConfirmation(p Payload) Confirmation {
	label := "people"
	if p.Participants == 1 {
		label = "person"
	}

	return Confirmation{
		Step:              StepConfirmed,
		BookingID:         p.BookingID,
		TourID:            p.TourID.String(),
		TourTitle:         p.TourTitle,
		TourImage:         p.TourImage,
		SelectedDate:      p.SelectedDate,
		Participants:      p.Participants,
		ParticipantsLabel: label,
		Total:             p.Total(),
		SubmittedAt:       p.SubmittedAt,
	}
}
