package space

import "errors"

// Domain errors for iteration space validation.
var (
	// ErrInvalidDimension indicates a non-positive or over-limit axis length.
	ErrInvalidDimension = errors.New("space: dimension must be in [1, 512]")
)
