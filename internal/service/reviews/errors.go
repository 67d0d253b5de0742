package reviews

import "errors"

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrTourNotFound  = errors.New("tour not found")
)
