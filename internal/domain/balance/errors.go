package balance

import "errors"

var (
	// ErrNotAllowed is returned when a non-admin requests another
	// employee's summary.
	ErrNotAllowed = errors.New("not allowed to view this employee's summary")
)
