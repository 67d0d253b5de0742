package catalog

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/travelease/internal/domain"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func tour(title, location string, price float64, days int, rating float64, startOffsetDays int) domain.Tour {
	return domain.Tour{
		ID:           uuid.New(),
		Title:        title,
		Location:     location,
		Price:        price,
		Duration:     days,
		Rating:       rating,
		StartDate:    now.AddDate(0, 0, startOffsetDays),
		MaxGroupSize: 12,
	}
}

func fixtures() []domain.Tour {
	return []domain.Tour{
		tour("Amalfi Coast", "Amalfi, Italy", 1299, 3, 4.8, 30),
		tour("Tuscan Vineyards", "Florence, Italy", 2499, 7, 4.2, -200),
		tour("Kyoto Temples", "Kyoto, Japan", 899, 2, 4.0, -10),
		tour("Masai Mara Safari", "Narok, Kenya", 3500, 10, 4.9, 60),
		tour("Rome Weekend", "Rome, Italy", 1499, 1, 3.5, -120),
		tour("Ring Road", "Reykjavik, Iceland", 1500, 16, 5, -400),
		tour("Venice Canals", "Venice, Italy", 999, 2, 4.2, -30),
	}
}

func titles(tours []domain.Tour) []string {
	out := make([]string, 0, len(tours))
	for _, t := range tours {
		out = append(out, t.Title)
	}
	return out
}

func TestNewShowsEverything(t *testing.T) {
	c := New(fixtures())

	assert.Equal(t, titles(c.All), titles(c.Visible))
	assert.Equal(t, CategoryAll, c.ActiveCategory)
	assert.Equal(t, DefaultAdvancedFilter(), c.Advanced)
	assert.Equal(t, MechanismNone, c.LastApplied)
}

func TestPopularSplitsOnRating(t *testing.T) {
	c := New(fixtures())

	visible := c.ApplyCategory(CategoryPopular, now)

	for _, tr := range c.All {
		if tr.Rating >= 4.5 {
			assert.Contains(t, visible, tr, tr.Title)
		} else {
			assert.NotContains(t, visible, tr, tr.Title)
		}
	}
	assert.Equal(t, []string{"Amalfi Coast", "Masai Mara Safari", "Ring Road"}, titles(visible))
}

func TestTrendingSplitsOnPrice(t *testing.T) {
	c := New(fixtures())

	visible := c.ApplyCategory(CategoryTrending, now)

	for _, tr := range c.All {
		if tr.Price < 1500 {
			assert.Contains(t, visible, tr, tr.Title)
		} else {
			assert.NotContains(t, visible, tr, tr.Title)
		}
	}
}

func TestNewUsesThreeMonthWindow(t *testing.T) {
	c := New(fixtures())

	visible := c.ApplyCategory(CategoryNew, now)

	assert.Equal(t, []string{"Amalfi Coast", "Kyoto Temples", "Masai Mara Safari", "Venice Canals"}, titles(visible))
}

func TestAllRestoresFullList(t *testing.T) {
	c := New(fixtures())
	c.ApplyCategory(CategoryPopular, now)

	visible := c.ApplyCategory(CategoryAll, now)

	assert.Len(t, visible, len(c.All))
}

func TestAdvancedAfterPopularIgnoresPopular(t *testing.T) {
	c := New(fixtures())
	c.ApplyCategory(CategoryPopular, now)

	visible := c.ApplyAdvanced(AdvancedFilter{
		Destination: "italy",
		MinPrice:    0,
		MaxPrice:    2000,
		Duration:    "1-3",
		Rating:      "4+",
	})

	// Venice Canals is rated 4.2: a composed filter would have dropped it.
	assert.Equal(t, []string{"Amalfi Coast", "Venice Canals"}, titles(visible))
	assert.Equal(t, MechanismAdvanced, c.LastApplied)
	assert.Equal(t, CategoryPopular, c.ActiveCategory)
}

func TestCategoryAfterAdvancedIgnoresAdvanced(t *testing.T) {
	c := New(fixtures())
	c.ApplyAdvanced(AdvancedFilter{Destination: "japan", MaxPrice: 5000, Duration: "all", Rating: "all"})

	visible := c.ApplyCategory(CategoryPopular, now)

	assert.Equal(t, []string{"Amalfi Coast", "Masai Mara Safari", "Ring Road"}, titles(visible))
}

func TestAdvancedBuckets(t *testing.T) {
	tests := []struct {
		name   string
		filter AdvancedFilter
		want   []string
	}{
		{
			name:   "defaults keep everything in price range",
			filter: DefaultAdvancedFilter(),
			want:   []string{"Amalfi Coast", "Tuscan Vineyards", "Kyoto Temples", "Masai Mara Safari", "Rome Weekend", "Ring Road", "Venice Canals"},
		},
		{
			name:   "price range is inclusive",
			filter: AdvancedFilter{Destination: "all", MinPrice: 1299, MaxPrice: 1500, Duration: "all", Rating: "all"},
			want:   []string{"Amalfi Coast", "Rome Weekend", "Ring Road"},
		},
		{
			name:   "duration 4-7",
			filter: AdvancedFilter{Destination: "all", MaxPrice: 5000, Duration: "4-7", Rating: "all"},
			want:   []string{"Tuscan Vineyards"},
		},
		{
			name:   "duration 8-14",
			filter: AdvancedFilter{Destination: "all", MaxPrice: 5000, Duration: "8-14", Rating: "all"},
			want:   []string{"Masai Mara Safari"},
		},
		{
			name:   "duration 15+",
			filter: AdvancedFilter{Destination: "all", MaxPrice: 5000, Duration: "15+", Rating: "all"},
			want:   []string{"Ring Road"},
		},
		{
			name:   "rating 5 is exact",
			filter: AdvancedFilter{Destination: "all", MaxPrice: 5000, Duration: "all", Rating: "5"},
			want:   []string{"Ring Road"},
		},
		{
			name:   "rating 3+",
			filter: AdvancedFilter{Destination: "all", MaxPrice: 5000, Duration: "1-3", Rating: "3+"},
			want:   []string{"Amalfi Coast", "Kyoto Temples", "Rome Weekend", "Venice Canals"},
		},
		{
			name:   "destination is a case-insensitive substring",
			filter: AdvancedFilter{Destination: "KEN", MaxPrice: 5000, Duration: "all", Rating: "all"},
			want:   []string{"Masai Mara Safari"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(fixtures())
			assert.Equal(t, tt.want, titles(c.ApplyAdvanced(tt.filter)))
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultAdvancedFilter().Validate())

	bad := []AdvancedFilter{
		{Destination: "all", MaxPrice: 5000, Duration: "2-5", Rating: "all"},
		{Destination: "all", MaxPrice: 5000, Duration: "all", Rating: "2+"},
		{Destination: "all", MinPrice: 300, MaxPrice: 100, Duration: "all", Rating: "all"},
		{Destination: "all", MinPrice: math.NaN(), MaxPrice: math.NaN(), Duration: "all", Rating: "all"},
		{Destination: "all", MinPrice: 0, MaxPrice: math.Inf(1), Duration: "all", Rating: "all"},
	}
	for _, f := range bad {
		assert.ErrorIs(t, f.Validate(), ErrInvalidFilter)
	}
}

func TestApplyQueryLastMechanismWins(t *testing.T) {
	c := New(fixtures())

	order, err := c.ApplyQuery("category=popular&destination=italy&min_price=0&max_price=2000&duration=1-3&rating=4%2B", now)
	require.NoError(t, err)

	assert.Equal(t, []Mechanism{MechanismCategory, MechanismAdvanced}, order)
	assert.Equal(t, []string{"Amalfi Coast", "Venice Canals"}, titles(c.Visible))

	c = New(fixtures())
	order, err = c.ApplyQuery("destination=italy&max_price=2000&category=popular", now)
	require.NoError(t, err)

	assert.Equal(t, []Mechanism{MechanismAdvanced, MechanismCategory}, order)
	assert.Equal(t, []string{"Amalfi Coast", "Masai Mara Safari", "Ring Road"}, titles(c.Visible))
}

func TestApplyQueryUnescapedPlus(t *testing.T) {
	c := New(fixtures())

	_, err := c.ApplyQuery("rating=4+&duration=15+", now)
	require.NoError(t, err)

	assert.Equal(t, "4+", c.Advanced.Rating)
	assert.Equal(t, "15+", c.Advanced.Duration)
	assert.Equal(t, []string{"Ring Road"}, titles(c.Visible))
}

func TestApplyQueryEmptyLeavesCatalog(t *testing.T) {
	c := New(fixtures())

	order, err := c.ApplyQuery("", now)
	require.NoError(t, err)

	assert.Empty(t, order)
	assert.Len(t, c.Visible, len(c.All))
}

func TestApplyQueryRejectsUnknownValues(t *testing.T) {
	queries := []string{
		"category=cheap",
		"duration=2-5",
		"max_price=lots",
		"min_price=NaN&max_price=NaN",
		"max_price=NaN",
		"max_price=%2BInf",
	}
	for _, q := range queries {
		c := New(fixtures())
		_, err := c.ApplyQuery(q, now)
		assert.ErrorIs(t, err, ErrInvalidFilter, q)
	}
}
