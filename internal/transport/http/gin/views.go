package httpgin

import (
	"github.com/kirinyoku/travelease/internal/bookingflow"
	"github.com/kirinyoku/travelease/internal/catalog"
	"github.com/kirinyoku/travelease/internal/domain"
)

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type HomeView struct {
	User     *domain.User  `json:"user,omitempty"`
	Featured []domain.Tour `json:"featured"`
	Links    []Link        `json:"links"`
}

type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Value    string `json:"value,omitempty"`
}

type FormView struct {
	Title  string      `json:"title"`
	Action string      `json:"action"`
	Fields []FormField `json:"fields"`
	Links  []Link      `json:"links,omitempty"`
}

type ProfileView struct {
	User     domain.User              `json:"user"`
	Profile  *domain.Profile          `json:"profile"`
	Bookings []domain.BookingWithTour `json:"bookings"`
}

type CatalogView struct {
	Tours           []domain.Tour          `json:"tours"`
	TotalTours      int                    `json:"total_tours"`
	ActiveCategory  catalog.Category       `json:"active_category"`
	Advanced        catalog.AdvancedFilter `json:"advanced"`
	LastApplied     catalog.Mechanism      `json:"last_applied"`
	Categories      []catalog.Category     `json:"categories"`
	DurationOptions []string               `json:"duration_options"`
	RatingOptions   []string               `json:"rating_options"`
}

type TourDetailsView struct {
	Tour         domain.Tour               `json:"tour"`
	Reviews      []domain.ReviewWithAuthor `json:"reviews"`
	Quote        bookingflow.Quote         `json:"quote"`
	BookAction   string                    `json:"book_action"`
	AuthRequired bool                      `json:"auth_required"`
}

type PaymentPage struct {
	bookingflow.PaymentView
	State        string `json:"state"`
	SubmitAction string `json:"submit_action"`
}

type ConfirmationPage struct {
	bookingflow.Confirmation
	ReceiptURL string `json:"receipt_url"`
	Links      []Link `json:"links"`
}

type AboutView struct {
	Title    string   `json:"title"`
	Mission  string   `json:"mission"`
	Values   []string `json:"values"`
	Contact  Link     `json:"contact"`
	Explore  Link     `json:"explore"`
	Founded  int      `json:"founded"`
	Overview string   `json:"overview"`
}

type ContactView struct {
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Form    FormView `json:"form"`
}

type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}
