package httpgin

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kirinyoku/travelease/internal/bookingflow"
	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/receipt"
)

const bookingFailedMessage = "Failed to create booking. Please try again."

// @Summary  Payment step
// @Param    tourId  path   string  true   "Tour ID (uuid)"
// @Param    state   query  string  true   "booking flow state"
// @Param    method  query  string  false  "credit-card | paypal | bank-transfer"
// @Success  200  {object}  PaymentPage
// @Success  303  "missing state or session"
// @Router   /booking/{tourId} [get]
func handlePaymentPage(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, state, ok := loadPaying(c, d)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, paymentPage(*p, state, domain.PaymentMethod(c.Query("method"))))
	}
}

// @Summary  Complete booking
// @Param    tourId  path   string          true  "Tour ID (uuid)"
// @Param    state   query  string          true  "booking flow state"
// @Param    req     body   PaymentRequest  true  "payment details"
// @Success  303  "to /booking/confirmation"
// @Failure  400  {object}  PaymentPage
// @Failure  500  {object}  PaymentPage
// @Router   /booking/{tourId} [post]
func handleSubmitPayment(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, state, ok := loadPaying(c, d)
		if !ok {
			return
		}

		var req PaymentRequest
		if err := c.ShouldBind(&req); err != nil {
			page := paymentPage(*p, state, domain.PaymentMethod(req.Method))
			page.Error = err.Error()
			c.JSON(http.StatusBadRequest, page)
			return
		}

		page := paymentPage(*p, state, domain.PaymentMethod(req.Method))

		next, err := d.Bookings.Confirm(c.Request.Context(), currentUser(c), *p, req.toForm())
		if err != nil {
			if errors.Is(err, bookingflow.ErrInvalidPayment) {
				page.Error = clientMessage(err, bookingflow.ErrInvalidPayment)
				c.JSON(http.StatusBadRequest, page)
				return
			}

			_ = c.Error(err)
			page.Error = bookingFailedMessage
			c.JSON(http.StatusInternalServerError, page)
			return
		}

		nextState, err := d.Nav.Save(c.Request.Context(), next)
		if err != nil {
			respondErr(c, err)
			return
		}

		seeOther(c, "/booking/confirmation?state="+url.QueryEscape(nextState))
	}
}

// @Summary  Booking confirmation
// @Param    state  query  string  true  "booking flow state"
// @Success  200  {object}  ConfirmationPage
// @Success  303  "missing state or session"
// @Router   /booking/confirmation [get]
func handleConfirmation(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, state, ok := loadConfirmed(c, d)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, ConfirmationPage{
			Confirmation: bookingflow.NewConfirmation(*p),
			ReceiptURL:   "/booking/confirmation/receipt?state=" + url.QueryEscape(state),
			Links: []Link{
				{Label: "View My Bookings", Href: "/profile"},
				{Label: "Explore More Tours", Href: "/tours"},
			},
		})
	}
}

// @Summary  Booking receipt as PDF
// @Param    state  query  string  true  "booking flow state"
// @Produce  application/pdf
// @Success  200  {file}  binary
// @Success  303  "missing state or session"
// @Router   /booking/confirmation/receipt [get]
func handleReceipt(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _, ok := loadConfirmed(c, d)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := receipt.Render(&buf, bookingflow.NewConfirmation(*p), *currentUser(c)); err != nil {
			respondErr(c, err)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="travelease-`+p.BookingID+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}

func paymentPage(p bookingflow.Payload, state string, method domain.PaymentMethod) PaymentPage {
	return PaymentPage{
		PaymentView:  bookingflow.NewPaymentView(p, method),
		State:        state,
		SubmitAction: "/booking/" + p.TourID.String() + "?state=" + url.QueryEscape(state),
	}
}

// loadPaying restores the payload for the payment step. Visitors without a
// session are sent to sign in before any state is read. A payload for a
// different tour than the one in the path counts as missing.
func loadPaying(c *gin.Context, d Deps) (*bookingflow.Payload, string, bool) {
	state := c.Query("state")

	if currentUser(c) == nil {
		seeOther(c, bookingflow.RouteLogin)
		return nil, "", false
	}

	p, err := loadPayload(c, d, state)
	if err != nil {
		respondErr(c, err)
		return nil, "", false
	}

	if p != nil {
		if id, err := uuid.Parse(c.Param("tourId")); err != nil || id != p.TourID {
			p = nil
		}
	}

	if target := bookingflow.GuardPaying(currentUser(c), p); target != "" {
		seeOther(c, target)
		return nil, "", false
	}

	return p, state, true
}

func loadConfirmed(c *gin.Context, d Deps) (*bookingflow.Payload, string, bool) {
	state := c.Query("state")

	if currentUser(c) == nil {
		seeOther(c, bookingflow.RouteLogin)
		return nil, "", false
	}

	p, err := loadPayload(c, d, state)
	if err != nil {
		respondErr(c, err)
		return nil, "", false
	}

	if target := bookingflow.GuardConfirmed(currentUser(c), p); target != "" {
		seeOther(c, target)
		return nil, "", false
	}

	return p, state, true
}

func loadPayload(c *gin.Context, d Deps, state string) (*bookingflow.Payload, error) {
	var p bookingflow.Payload

	ok, err := d.Nav.Load(c.Request.Context(), state, &p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return &p, nil
}
