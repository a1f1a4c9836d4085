package listings

import "errors"

var ErrNotFound = errors.New("Listing not found")
