package bookings

import "errors"

var ErrTourNotFound = errors.New("tour or user not found")
