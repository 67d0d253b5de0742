package tours

import "errors"

var ErrTourNotFound = errors.New("tour not found")
