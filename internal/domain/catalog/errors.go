package catalog

import "errors"

// Sentinel kinds for catalog configuration errors.
var (
	ErrInvalidCatalog = errors.New("invalid catalog configuration")
	ErrUnknownRole    = errors.New("unknown role")
)
