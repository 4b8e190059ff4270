package model

import "errors"

// Sentinel kinds for dataset record errors.
var (
	ErrInvalidRecord   = errors.New("invalid player record")
	ErrInvalidPosition = errors.New("invalid position")
)
