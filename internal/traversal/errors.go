package traversal

import "errors"

// Domain errors for algorithm configuration.
var (
	// ErrInvalidOrder indicates a loop order that is not a permutation of i, j, k.
	ErrInvalidOrder = errors.New("traversal: loop order must be a permutation of i, j, k")

	// ErrInvalidTile indicates a tile size outside [1, axis length].
	ErrInvalidTile = errors.New("traversal: tile size must be in [1, axis length]")
)
