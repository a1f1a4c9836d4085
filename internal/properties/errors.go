package properties

import "errors"

var (
	ErrNotFound     = errors.New("Property not found")
	ErrInvalidState = errors.New("Only LISTED properties can be deleted")
)
