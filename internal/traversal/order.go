package traversal

import (
	"fmt"
	"strings"

	"github.com/san-kum/matcube/internal/space"
)

// Axis identifies one of the three iteration axes.
type Axis int

const (
	AxisI Axis = iota // rows of C, length M
	AxisJ             // columns of C, length N
	AxisK             // shared dimension, length K
)

func (a Axis) String() string {
	switch a {
	case AxisI:
		return "i"
	case AxisJ:
		return "j"
	case AxisK:
		return "k"
	}
	return "?"
}

// Order is a permutation of the three axes. Index 0 is the outermost
// (slowest-varying) loop, index 2 the innermost.
type Order [3]Axis

// The six canonical loop orders.
var (
	IJK = Order{AxisI, AxisJ, AxisK}
	IKJ = Order{AxisI, AxisK, AxisJ}
	JIK = Order{AxisJ, AxisI, AxisK}
	JKI = Order{AxisJ, AxisK, AxisI}
	KIJ = Order{AxisK, AxisI, AxisJ}
	KJI = Order{AxisK, AxisJ, AxisI}
)

// ParseOrder reads a loop order like "ikj". Case-insensitive; every
// axis must appear exactly once.
func ParseOrder(s string) (Order, error) {
	var o Order
	if len(s) != 3 {
		return o, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
	}
	var seen [3]bool
	for n, r := range strings.ToLower(s) {
		var a Axis
		switch r {
		case 'i':
			a = AxisI
		case 'j':
			a = AxisJ
		case 'k':
			a = AxisK
		default:
			return o, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
		}
		if seen[a] {
			return o, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
		}
		seen[a] = true
		o[n] = a
	}
	return o, nil
}

func (o Order) String() string {
	return o[0].String() + o[1].String() + o[2].String()
}

// valid reports whether each axis appears exactly once.
func (o Order) valid() bool {
	var seen [3]bool
	for _, a := range o {
		if a < AxisI || a > AxisK || seen[a] {
			return false
		}
		seen[a] = true
	}
	return true
}

// extents returns the axis lengths of d arranged in loop order.
func (o Order) extents(d space.Dims) [3]int {
	var e [3]int
	for n, a := range o {
		e[n] = axisLen(d, a)
	}
	return e
}

// step assembles a MacStep from per-loop indices, offset from base.
func (o Order) step(base space.MacStep, idx [3]int) space.MacStep {
	s := base
	for n, a := range o {
		switch a {
		case AxisI:
			s.I += idx[n]
		case AxisJ:
			s.J += idx[n]
		case AxisK:
			s.K += idx[n]
		}
	}
	return s
}

// split rearranges per-loop indices back into per-axis (i, j, k).
func (o Order) split(idx [3]int) (i, j, k int) {
	for n, a := range o {
		switch a {
		case AxisI:
			i = idx[n]
		case AxisJ:
			j = idx[n]
		case AxisK:
			k = idx[n]
		}
	}
	return i, j, k
}

func axisLen(d space.Dims, a Axis) int {
	switch a {
	case AxisI:
		return d.M
	case AxisJ:
		return d.N
	default:
		return d.K
	}
}

// decode splits t into three mixed-radix digits over ext, outermost
// digit first. This is the inverse of row-major nested-loop counting.
func decode(t int, ext [3]int) [3]int {
	var idx [3]int
	idx[2] = t % ext[2]
	rest := t / ext[2]
	idx[1] = rest % ext[1]
	idx[0] = rest / ext[1]
	return idx
}
