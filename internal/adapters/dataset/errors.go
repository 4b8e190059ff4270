package dataset

import "errors"

// Sentinel kinds for dataset loading errors. All of them are fatal for the
// session; there are no retries in the core.
var (
	ErrInvalidSource = errors.New("invalid dataset source")
	ErrFetch         = errors.New("dataset fetch failed")
	ErrDecode        = errors.New("dataset decode failed")
)
