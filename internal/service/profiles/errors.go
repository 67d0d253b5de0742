package profiles

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmptyName       = errors.New("name must not be empty")
)
