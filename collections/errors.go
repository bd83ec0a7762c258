package collections

import "errors"

// Sentinel errors returned by collection helpers.
var (
	// ErrNilKeySelector is returned when a nil key selector or comparator is
	// added to a [Sorter].
	ErrNilKeySelector = errors.New("collections: key selector must not be nil")
)
