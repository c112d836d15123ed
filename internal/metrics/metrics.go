// Package metrics reduces the consumed step stream to locality
// figures: how often a traversal changes the operand element it
// touches and how large its recent working set is. These are the
// quantities that make loop orders visibly different.
package metrics

import "github.com/san-kum/matcube/internal/space"

// Metric observes steps in playback order and reduces them to a
// single value.
type Metric interface {
	Name() string
	Observe(step space.MacStep)
	Value() float64
	Reset()
}
