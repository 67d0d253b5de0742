package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var advancedKeys = map[string]bool{
	"destination": true,
	"min_price":   true,
	"max_price":   true,
	"duration":    true,
	"rating":      true,
}

// ApplyQuery applies the filter mechanisms named in a raw query string in the
// order their parameters first appear, so the mechanism that appears last
// decides Visible. The advanced panel is always applied as a whole: keys that
// are absent keep their default values.
//
// It returns the mechanisms in application order.
func (c *Catalog) ApplyQuery(rawQuery string, now time.Time) ([]Mechanism, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	order := mechanismOrder(rawQuery)
	for _, m := range order {
		switch m {
		case MechanismCategory:
			cat, err := ParseCategory(values.Get("category"))
			if err != nil {
				return nil, err
			}
			c.ApplyCategory(cat, now)
		case MechanismAdvanced:
			f, err := parseAdvanced(values)
			if err != nil {
				return nil, err
			}
			c.ApplyAdvanced(f)
		}
	}

	return order, nil
}

func mechanismOrder(rawQuery string) []Mechanism {
	var (
		order              []Mechanism
		seenCat, seenPanel bool
	)

	for _, pair := range strings.Split(rawQuery, "&") {
		key, _, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}

		switch {
		case key == "category" && !seenCat:
			seenCat = true
			order = append(order, MechanismCategory)
		case advancedKeys[key] && !seenPanel:
			seenPanel = true
			order = append(order, MechanismAdvanced)
		}
	}

	return order
}

func parseAdvanced(values url.Values) (AdvancedFilter, error) {
	f := DefaultAdvancedFilter()

	if v := strings.TrimSpace(values.Get("destination")); v != "" {
		f.Destination = v
	}
	if v := values.Get("duration"); v != "" {
		f.Duration = normalizeBucket(v)
	}
	if v := values.Get("rating"); v != "" {
		f.Rating = normalizeBucket(v)
	}

	var err error
	if v := values.Get("min_price"); v != "" {
		if f.MinPrice, err = strconv.ParseFloat(v, 64); err != nil {
			return f, fmt.Errorf("%w: min_price %q", ErrInvalidFilter, v)
		}
	}
	if v := values.Get("max_price"); v != "" {
		if f.MaxPrice, err = strconv.ParseFloat(v, 64); err != nil {
			return f, fmt.Errorf("%w: max_price %q", ErrInvalidFilter, v)
		}
	}

	if err := f.Validate(); err != nil {
		return f, err
	}

	return f, nil
}

// normalizeBucket restores the '+' of open-ended buckets ("4+", "15+") that
// form encoding turns into a trailing space when the client does not escape it.
func normalizeBucket(v string) string {
	trimmed := strings.TrimSpace(v)
	switch trimmed {
	case "3", "4", "15":
		if trimmed != v {
			return trimmed + "+"
		}
	}
	return trimmed
}
