package httpgin

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/kirinyoku/travelease/internal/bookingflow"
	"github.com/kirinyoku/travelease/internal/catalog"
	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/metrics"
)

// @Summary  Tour catalog
// @Description  Quick filter (category) and advanced panel (destination, min_price,
// @Description  max_price, duration, rating). They are not combined: they are
// @Description  applied in query parameter order and the last one decides the list.
// @Param    category     query  string  false  "all | popular | trending | new"
// @Param    destination  query  string  false  "location substring"
// @Param    min_price    query  number  false  "default 0"
// @Param    max_price    query  number  false  "default 5000"
// @Param    duration     query  string  false  "all | 1-3 | 4-7 | 8-14 | 15+"
// @Param    rating       query  string  false  "all | 5 | 4+ | 3+"
// @Success  200  {object}  CatalogView
// @Failure  400  {object}  ErrorResponse
// @Router   /tours [get]
func handleListTours(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := d.Tours.ListTours(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		cat := catalog.New(list)
		applied, err := cat.ApplyQuery(c.Request.URL.RawQuery, d.Now())
		if err != nil {
			respondErr(c, err)
			return
		}
		for _, m := range applied {
			metrics.IncCatalogFilter(string(m))
		}

		writeJSONWithCache(c, http.StatusOK, CatalogView{
			Tours:           nonNil(cat.Visible),
			TotalTours:      len(cat.All),
			ActiveCategory:  cat.ActiveCategory,
			Advanced:        cat.Advanced,
			LastApplied:     cat.LastApplied,
			Categories:      []catalog.Category{catalog.CategoryAll, catalog.CategoryPopular, catalog.CategoryTrending, catalog.CategoryNew},
			DurationOptions: catalog.DurationBuckets,
			RatingOptions:   catalog.RatingBuckets,
		}, "public, max-age=60", true)
	}
}

// @Summary  Tour details with reviews and a price quote
// @Param    id            path   string  true   "Tour ID (uuid)"
// @Param    date          query  string  false  "YYYY-MM-DD, defaults to the tour start date"
// @Param    participants  query  int     false  "defaults to 1"
// @Success  200  {object}  TourDetailsView
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /tours/{id} [get]
func handleTourDetails(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		var (
			tour    *domain.Tour
			reviews []domain.ReviewWithAuthor
		)

		g, ctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() error {
			var err error
			tour, err = d.Tours.GetTour(ctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			reviews, err = d.Reviews.ListTourReviews(ctx, id)
			return err
		})
		if err := g.Wait(); err != nil {
			respondErr(c, err)
			return
		}

		sel, err := selectionFrom(*tour, c.Query("date"), c.Query("participants"))
		if err != nil {
			respondErr(c, err)
			return
		}

		user := currentUser(c)
		cacheControl := "public, max-age=60"
		if user != nil {
			cacheControl = "private, max-age=60"
		}

		writeJSONWithCache(c, http.StatusOK, TourDetailsView{
			Tour:         *tour,
			Reviews:      nonNil(reviews),
			Quote:        bookingflow.NewQuote(*tour, sel),
			BookAction:   "/tours/" + id.String() + "/book",
			AuthRequired: user == nil,
		}, cacheControl, true)
	}
}

// @Summary  Enter the booking flow
// @Param    id   path  string       true   "Tour ID (uuid)"
// @Param    req  body  BookRequest  false  "date and participants"
// @Success  303
// @Failure  400  {object}  ErrorResponse
// @Failure  401  {object}  AuthPromptResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /tours/{id}/book [post]
func handleBeginBooking(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		user := currentUser(c)
		if user == nil {
			back := "/tours/" + id.String()
			c.JSON(http.StatusUnauthorized, AuthPromptResponse{
				Error:  "Please sign in to book this tour",
				Login:  "/login?redirect=" + url.QueryEscape(back),
				Signup: "/signup",
			})
			return
		}

		var req BookRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBind(&req); err != nil {
				badRequest(c, err.Error())
				return
			}
		}

		tour, err := d.Tours.GetTour(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}

		participants := ""
		if req.Participants != 0 {
			participants = strconv.Itoa(req.Participants)
		}
		sel, err := selectionFrom(*tour, req.Date, participants)
		if err != nil {
			respondErr(c, err)
			return
		}

		p, err := bookingflow.Begin(user, *tour, sel)
		if err != nil {
			respondErr(c, err)
			return
		}

		state, err := d.Nav.Save(c.Request.Context(), p)
		if err != nil {
			respondErr(c, err)
			return
		}

		seeOther(c, "/booking/"+id.String()+"?state="+state)
	}
}

// @Summary  Review a tour
// @Param    id   path  string         true  "Tour ID (uuid)"
// @Param    req  body  ReviewRequest  true  "rating and comment"
// @Success  201  {object}  domain.Review
// @Failure  400  {object}  ErrorResponse
// @Failure  401  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /tours/{id}/reviews [post]
func handleCreateReview(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		user := currentUser(c)
		if user == nil {
			respondErr(c, bookingflow.ErrAuthRequired)
			return
		}

		var req ReviewRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		r, err := d.Reviews.CreateReview(c.Request.Context(), domain.Review{
			UserID:  user.ID,
			TourID:  id,
			Rating:  req.Rating,
			Comment: strings.TrimSpace(req.Comment),
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, r)
	}
}

// selectionFrom reads the details view inputs. Empty values fall back to the
// tour defaults; anything given is checked against the tour bounds.
func selectionFrom(t domain.Tour, date, participants string) (bookingflow.Selection, error) {
	sel := bookingflow.DefaultSelection(t)
	if date == "" && participants == "" {
		return sel, nil
	}

	if date != "" {
		d, err := parseDate(date)
		if err != nil {
			return sel, fmt.Errorf("%w: date must be YYYY-MM-DD", bookingflow.ErrInvalidSelection)
		}
		sel.Date = d
	}
	if participants != "" {
		sel.Participants = parseIntDefault(participants, 0)
	}

	if err := bookingflow.ValidateSelection(t, sel); err != nil {
		return sel, err
	}

	return sel, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
