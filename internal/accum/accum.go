// Package accum owns the live output of a run: the partially summed
// C matrix plus access-heat counters for A and B. It is mutated only
// by applying MAC steps in generator order.
package accum

import (
	"github.com/san-kum/matcube/internal/matrix"
	"github.com/san-kum/matcube/internal/space"
)

// Delta is the observable result of applying one step: the updated C
// value and the running access counts of the operand elements read.
type Delta struct {
	CValue float64
	AHits  int
	BHits  int
}

// Accumulator applies MAC steps against fixed operands. Coordinates
// are guaranteed in-range by the originating generator, so Apply has
// no failure mode; applying the same step twice double-counts, which
// the controller's cursor discipline rules out.
type Accumulator struct {
	dims  space.Dims
	a, b  *matrix.Dense
	c     *matrix.Dense
	aHits *matrix.Counts
	bHits *matrix.Counts
}

// New returns a zeroed accumulator over a and b, which must be shaped
// MxK and KxN for d.
func New(d space.Dims, a, b *matrix.Dense) *Accumulator {
	return &Accumulator{
		dims:  d,
		a:     a,
		b:     b,
		c:     matrix.New(d.M, d.N),
		aHits: matrix.NewCounts(d.M, d.K),
		bHits: matrix.NewCounts(d.K, d.N),
	}
}

// Apply performs C[i,j] += A[i,k]*B[k,j] and bumps both operand
// counters.
func (ac *Accumulator) Apply(s space.MacStep) Delta {
	return Delta{
		CValue: ac.c.Add(s.I, s.J, ac.a.At(s.I, s.K)*ac.b.At(s.K, s.J)),
		AHits:  ac.aHits.Inc(s.I, s.K),
		BHits:  ac.bHits.Inc(s.K, s.J),
	}
}

// Reset zeroes C and the access counters. The operands are inputs,
// not state, and are left alone.
func (ac *Accumulator) Reset() {
	ac.c.Zero()
	ac.aHits.Zero()
	ac.bHits.Zero()
}

func (ac *Accumulator) Dims() space.Dims      { return ac.dims }
func (ac *Accumulator) A() *matrix.Dense      { return ac.a }
func (ac *Accumulator) B() *matrix.Dense      { return ac.b }
func (ac *Accumulator) C() *matrix.Dense      { return ac.c }
func (ac *Accumulator) AHits() *matrix.Counts { return ac.aHits }
func (ac *Accumulator) BHits() *matrix.Counts { return ac.bHits }
