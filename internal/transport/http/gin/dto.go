package httpgin

import (
	"time"

	"github.com/kirinyoku/travelease/internal/bookingflow"
	"github.com/kirinyoku/travelease/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" form:"name" binding:"required,max=100"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" form:"token" binding:"required"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

type BookRequest struct {
	Date         string `json:"date" form:"date"`
	Participants int    `json:"participants" form:"participants"`
}

type PaymentRequest struct {
	Method     string `json:"payment_method" form:"payment_method" binding:"required"`
	CardName   string `json:"card_name" form:"card_name"`
	CardNumber string `json:"card_number" form:"card_number"`
	Expiry     string `json:"expiry_date" form:"expiry_date"`
	CVV        string `json:"cvv" form:"cvv"`
}

func (r PaymentRequest) toForm() bookingflow.PaymentForm {
	return bookingflow.PaymentForm{
		Method:     domain.PaymentMethod(r.Method),
		CardName:   r.CardName,
		CardNumber: r.CardNumber,
		Expiry:     r.Expiry,
		CVV:        r.CVV,
	}
}

type ReviewRequest struct {
	Rating  int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" form:"comment" binding:"max=2000"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required,max=100"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Subject string `json:"subject" form:"subject" binding:"max=200"`
	Message string `json:"message" form:"message" binding:"required,max=5000"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// AuthPromptResponse is returned instead of entering the booking flow when
// nobody is signed in.
type AuthPromptResponse struct {
	Error  string `json:"error"`
	Login  string `json:"login"`
	Signup string `json:"signup"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
