package repository

import "errors"

// Sentinel kinds for pool errors.
var (
	ErrNotFound    = errors.New("player not found")
	ErrDuplicateID = errors.New("duplicate player id")
)
