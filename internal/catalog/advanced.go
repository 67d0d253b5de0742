package catalog

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/kirinyoku/travelease/internal/domain"
)

var ErrInvalidFilter = errors.New("invalid filter")

const (
	AnyValue = "all"

	DefaultMinPrice = 0
	DefaultMaxPrice = 5000
)

var (
	DurationBuckets = []string{AnyValue, "1-3", "4-7", "8-14", "15+"}
	RatingBuckets   = []string{AnyValue, "5", "4+", "3+"}
)

type AdvancedFilter struct {
	Destination string  `json:"destination"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	Duration    string  `json:"duration"`
	Rating      string  `json:"rating"`
}

func DefaultAdvancedFilter() AdvancedFilter {
	return AdvancedFilter{
		Destination: AnyValue,
		MinPrice:    DefaultMinPrice,
		MaxPrice:    DefaultMaxPrice,
		Duration:    AnyValue,
		Rating:      AnyValue,
	}
}

func (f AdvancedFilter) Validate() error {
	if !slices.Contains(DurationBuckets, f.Duration) {
		return fmt.Errorf("%w: duration %q", ErrInvalidFilter, f.Duration)
	}

	if !slices.Contains(RatingBuckets, f.Rating) {
		return fmt.Errorf("%w: rating %q", ErrInvalidFilter, f.Rating)
	}

	if !finite(f.MinPrice) || !finite(f.MaxPrice) || f.MinPrice < 0 || f.MaxPrice < f.MinPrice {
		return fmt.Errorf("%w: price range [%v, %v]", ErrInvalidFilter, f.MinPrice, f.MaxPrice)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Match applies every panel predicate. The price range is inclusive and is
// always checked, even at its default bounds.
func (f AdvancedFilter) Match(t domain.Tour) bool {
	if f.Destination != "" && f.Destination != AnyValue {
		if !strings.Contains(strings.ToLower(t.Location), strings.ToLower(f.Destination)) {
			return false
		}
	}

	if t.Price < f.MinPrice || t.Price > f.MaxPrice {
		return false
	}

	return matchDuration(f.Duration, t.Duration) && matchRating(f.Rating, t.Rating)
}

func matchDuration(bucket string, days int) bool {
	switch bucket {
	case "1-3":
		return days >= 1 && days <= 3
	case "4-7":
		return days >= 4 && days <= 7
	case "8-14":
		return days >= 8 && days <= 14
	case "15+":
		return days >= 15
	default:
		return true
	}
}

func matchRating(bucket string, rating float64) bool {
	switch bucket {
	case "5":
		return rating == 5
	case "4+":
		return rating >= 4
	case "3+":
		return rating >= 3
	default:
		return true
	}
}
