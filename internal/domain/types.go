package domain

import (
	"time"

	"github.com/google/uuid"
)

const BookingStatusConfirmed = "confirmed"

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit-card"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank-transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentPayPal, PaymentBankTransfer:
		return true
	}
	return false
}

type Tour struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Price        float64   `json:"price"`
	Duration     int       `json:"duration"`
	Location     string    `json:"location"`
	Rating       float64   `json:"rating"`
	StartDate    time.Time `json:"start_date"`
	MaxGroupSize int       `json:"max_group_size"`
	CreatedAt    time.Time `json:"created_at"`
}

type Booking struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	TourID          uuid.UUID `json:"tour_id"`
	BookingDate     time.Time `json:"booking_date"`
	NumParticipants int       `json:"num_participants"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookingWithTour struct {
	Booking
	Tour Tour `json:"tour"`
}

type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TourID    uuid.UUID `json:"tour_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewWithAuthor carries the author's public profile fields. Both are empty
// when the author has no profile row.
type ReviewWithAuthor struct {
	Review
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`
}

type Profile struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate is a partial update: nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string
	AvatarURL *string
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AuthEventType string

const (
	AuthSignedIn         AuthEventType = "signed_in"
	AuthSignedOut        AuthEventType = "signed_out"
	AuthUserUpdated      AuthEventType = "user_updated"
	AuthPasswordRecovery AuthEventType = "password_recovery"
)

// AuthEvent is a session change notification. Token is empty for events that
// are not tied to one session (user_updated, password_recovery).
type AuthEvent struct {
	Type   AuthEventType `json:"type"`
	Token  string        `json:"token,omitempty"`
	UserID uuid.UUID     `json:"user_id"`
	TsUnix int64         `json:"ts_unix"`
}
