package admin

import (
	"errors"
	"fmt"
)

var ErrEmptyCatalog = errors.New("catalog has no tours")

type InvalidTourError struct {
	Index  int
	Title  string
	Reason string
}

func (e InvalidTourError) Error() string {
	return fmt.Sprintf("tour #%d %q: %s", e.Index+1, e.Title, e.Reason)
}
