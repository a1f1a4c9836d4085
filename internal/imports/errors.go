package imports

import "errors"

var ErrListingNotFound = errors.New("Listing not found")
