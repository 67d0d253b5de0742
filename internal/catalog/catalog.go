// Package catalog holds the in-memory tour catalog and the two filter
// mechanisms that derive the visible subset from it.
//
// The category quick-filter and the advanced filter panel do not compose:
// each one recomputes the visible list from the full list, so whichever was
// applied last decides the result and the other one's constraints are dropped.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/kirinyoku/travelease/internal/domain"
)

type Category string

const (
	CategoryAll      Category = "all"
	CategoryPopular  Category = "popular"
	CategoryTrending Category = "trending"
	CategoryNew      Category = "new"
)

const (
	PopularMinRating = 4.5
	TrendingMaxPrice = 1500
	NewWindowMonths  = 3
)

func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryAll, CategoryPopular, CategoryTrending, CategoryNew:
		return c, nil
	case "":
		return CategoryAll, nil
	}

	return "", fmt.Errorf("%w: category %q", ErrInvalidFilter, s)
}

// Match reports whether t belongs to the category at evaluation time now.
func (c Category) Match(t domain.Tour, now time.Time) bool {
	switch c {
	case CategoryPopular:
		return t.Rating >= PopularMinRating
	case CategoryTrending:
		return t.Price < TrendingMaxPrice
	case CategoryNew:
		return t.StartDate.After(now.AddDate(0, -NewWindowMonths, 0))
	default:
		return true
	}
}

type Mechanism string

const (
	MechanismNone     Mechanism = ""
	MechanismCategory Mechanism = "category"
	MechanismAdvanced Mechanism = "advanced"
)

type Catalog struct {
	All            []domain.Tour
	Visible        []domain.Tour
	ActiveCategory Category
	Advanced       AdvancedFilter
	LastApplied    Mechanism
}

// New returns a catalog showing every tour, with the quick filter on "all"
// and the advanced panel at its defaults.
func New(tours []domain.Tour) *Catalog {
	visible := make([]domain.Tour, len(tours))
	copy(visible, tours)

	return &Catalog{
		All:            tours,
		Visible:        visible,
		ActiveCategory: CategoryAll,
		Advanced:       DefaultAdvancedFilter(),
	}
}

// ApplyCategory recomputes Visible from All using only the category predicate.
func (c *Catalog) ApplyCategory(cat Category, now time.Time) []domain.Tour {
	c.ActiveCategory = cat
	c.LastApplied = MechanismCategory
	c.Visible = filter(c.All, func(t domain.Tour) bool {
		return cat.Match(t, now)
	})

	return c.Visible
}

// ApplyAdvanced recomputes Visible from All using only the panel predicates.
// ActiveCategory is left as it was, even though it no longer describes Visible.
func (c *Catalog) ApplyAdvanced(f AdvancedFilter) []domain.Tour {
	c.Advanced = f
	c.LastApplied = MechanismAdvanced
	c.Visible = filter(c.All, f.Match)

	return c.Visible
}

func filter(tours []domain.Tour, keep func(domain.Tour) bool) []domain.Tour {
	out := make([]domain.Tour, 0, len(tours))
	for _, t := range tours {
		if keep(t) {
			out = append(out, t)
		}
	}

	return out
}
