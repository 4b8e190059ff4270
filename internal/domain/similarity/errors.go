package similarity

import "errors"

// Sentinel kinds for similarity query errors.
var (
	ErrInvalidFilter = errors.New("invalid filter")
)
