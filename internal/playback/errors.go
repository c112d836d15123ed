package playback

import "errors"

// Domain errors for playback control.
var (
	// ErrInvalidTransition indicates an operation not legal in the current state.
	ErrInvalidTransition = errors.New("playback: operation not valid in current state")
)
