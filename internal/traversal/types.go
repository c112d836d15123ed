package traversal

import "github.com/san-kum/matcube/internal/space"

// Generator produces the MAC steps of one algorithm configuration as
// a pure function of step index: At(t) always returns the same step
// for the same t, with no hidden cursor. The playback controller owns
// the progress cursor; a generator can therefore be shared, re-read
// or rebuilt without recomputation drift.
type Generator interface {
	// Len returns the total number of steps, always M*N*K.
	Len() int
	// At returns step t, 0 <= t < Len().
	At(t int) space.MacStep
}

// Algorithm is a traversal configuration that can mint generators for
// a shape. Parameter validation happens here, at configuration time,
// never during step generation.
type Algorithm interface {
	Name() string
	Generator(d space.Dims) (Generator, error)
}
