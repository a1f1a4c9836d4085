package rentals

import "errors"

var (
	ErrPropertyNotFound    = errors.New("Property not found")
	ErrApplicationNotFound = errors.New("Application not found")
	ErrNotRentListed       = errors.New("Property is not available for rent")
	ErrNotPending          = errors.New("Application is not pending")
	ErrAlreadyApplied      = errors.New("Application already exists")
)
