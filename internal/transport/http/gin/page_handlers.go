package httpgin

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/mail"
)

// @Summary  Home page
// @Success  200  {object}  HomeView
// @Router   / [get]
func handleHome(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		featured, err := d.Tours.FeaturedTours(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		links := []Link{
			{Label: "Explore Tours", Href: "/tours"},
			{Label: "About Us", Href: "/about"},
			{Label: "Contact", Href: "/contact"},
		}

		user := currentUser(c)
		if user == nil {
			links = append(links, Link{Label: "Sign in", Href: "/login"}, Link{Label: "Sign up", Href: "/signup"})
		} else {
			links = append(links, Link{Label: "Profile", Href: "/profile"})
		}

		c.JSON(http.StatusOK, HomeView{
			User:     user,
			Featured: nonNil(featured),
			Links:    links,
		})
	}
}

// @Summary  Profile and booking history
// @Success  200  {object}  ProfileView
// @Success  303  "to /login when signed out"
// @Router   /profile [get]
func handleProfile(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			seeOther(c, "/login?redirect=%2Fprofile")
			return
		}

		var (
			profile *domain.Profile
			history []domain.BookingWithTour
		)

		g, ctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() error {
			var err error
			profile, err = d.Profiles.GetProfile(ctx, user.ID)
			return err
		})
		g.Go(func() error {
			var err error
			history, err = d.Bookings.ListUserBookings(ctx, user.ID)
			return err
		})
		if err := g.Wait(); err != nil {
			respondErr(c, err)
			return
		}

		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusOK, ProfileView{
			User:     *user,
			Profile:  profile,
			Bookings: nonNil(history),
		})
	}
}

// @Summary  Update profile
// @Param    req  body  UpdateProfileRequest  true  "fields to change"
// @Success  200  {object}  domain.Profile
// @Failure  400  {object}  ErrorResponse
// @Failure  401  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /profile [patch]
func handleUpdateProfile(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "please sign in to continue"})
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		p, err := d.Profiles.UpdateProfile(c.Request.Context(), user.ID, domain.ProfileUpdate{
			Name:      req.Name,
			AvatarURL: req.AvatarURL,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, p)
	}
}

// @Summary  About page
// @Success  200  {object}  AboutView
// @Router   /about [get]
func handleAbout() gin.HandlerFunc {
	view := AboutView{
		Title:   "About TravelEase",
		Founded: 2015,
		Overview: "TravelEase started with a simple idea: travel should be easy. " +
			"We put together small-group tours led by local guides so you can focus on the trip, not the planning.",
		Mission: "To make meaningful travel accessible to everyone, with honest prices and carefully chosen experiences.",
		Values: []string{
			"Authentic experiences",
			"Sustainable travel",
			"Small groups",
			"Customer first",
		},
		Contact: Link{Label: "Contact Us", Href: "/contact"},
		Explore: Link{Label: "Explore Tours", Href: "/tours"},
	}

	return func(c *gin.Context) {
		writeJSONWithCache(c, http.StatusOK, view, "public, max-age=3600", true)
	}
}

// @Summary  Contact page
// @Success  200  {object}  ContactView
// @Router   /contact [get]
func handleContactPage(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ContactView{
			Email:   d.Options.SupportEmail,
			Phone:   "+1 (555) 123-4567",
			Address: "123 Travel Street, Adventure City, AC 12345",
			Form: FormView{
				Title:  "Send us a message",
				Action: "/contact",
				Fields: []FormField{
					{Name: "name", Type: "text", Label: "Your name", Required: true},
					{Name: "email", Type: "email", Label: "Email address", Required: true},
					{Name: "subject", Type: "text", Label: "Subject"},
					{Name: "message", Type: "textarea", Label: "Message", Required: true},
				},
			},
		})
	}
}

// @Summary  Send a message to support
// @Param    req  body  ContactRequest  true  "message"
// @Success  200  {object}  MessageResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /contact [post]
func handleContact(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		subject := strings.TrimSpace(req.Subject)
		if subject == "" {
			subject = "Website enquiry"
		}

		err := d.Mailer.Send(c.Request.Context(), mail.Message{
			To:      []string{d.Options.SupportEmail},
			ReplyTo: req.Email,
			Subject: "[Contact] " + subject,
			Body:    fmt.Sprintf("From: %s <%s>\n\n%s\n", req.Name, req.Email, req.Message),
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "Thank you for your message. We'll get back to you soon."})
	}
}
