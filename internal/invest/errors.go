package invest

import "errors"

var (
	ErrPropertyNotFound   = errors.New("Property not found")
	ErrInsufficientShares = errors.New("Not enough shares available")
)
