package space

import "fmt"

// MaxDim is the practical ceiling on a single axis. It caps the cube
// at 512^3 steps, far beyond what a playback view can usefully show;
// correctness does not depend on it.
const MaxDim = 512

// Dims is the shape of one multiplication: A is MxK, B is KxN,
// C is MxN. Immutable for the duration of a run.
type Dims struct {
	M, N, K int
}

// Validate checks every axis against [1, MaxDim].
func (d Dims) Validate() error {
	for _, v := range [3]int{d.M, d.N, d.K} {
		if v <= 0 || v > MaxDim {
			return fmt.Errorf("%w: got %dx%dx%d", ErrInvalidDimension, d.M, d.N, d.K)
		}
	}
	return nil
}

// TotalSteps returns M*N*K, the number of MAC operations in the cube.
func (d Dims) TotalSteps() int { return d.M * d.N * d.K }

func (d Dims) String() string { return fmt.Sprintf("%dx%dx%d", d.M, d.N, d.K) }

// Coord addresses one element of a 2D operand matrix.
type Coord struct {
	Row, Col int
}

// MacStep is one multiply-accumulate at (I, J, K):
// C[I,J] += A[I,K] * B[K,J]. Immutable value, produced once per
// logical step by a traversal generator.
type MacStep struct {
	I, J, K int
}

// A returns the element of A this step reads.
func (s MacStep) A() Coord { return Coord{s.I, s.K} }

// B returns the element of B this step reads.
func (s MacStep) B() Coord { return Coord{s.K, s.J} }

// C returns the element of C this step read-modify-writes.
func (s MacStep) C() Coord { return Coord{s.I, s.J} }

// In reports whether the step lies inside the cube of d.
func (s MacStep) In(d Dims) bool {
	return s.I >= 0 && s.I < d.M &&
		s.J >= 0 && s.J < d.N &&
		s.K >= 0 && s.K < d.K
}

func (s MacStep) String() string {
	return fmt.Sprintf("C[%d,%d] += A[%d,%d]*B[%d,%d]", s.I, s.J, s.I, s.K, s.K, s.J)
}
