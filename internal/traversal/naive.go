package traversal

import (
	"fmt"

	"github.com/san-kum/matcube/internal/space"
)

// Naive enumerates the cube with three nested loops in Order; the
// outermost listed axis varies slowest, the innermost fastest.
type Naive struct {
	Order Order
}

func (n Naive) Name() string { return "naive-" + n.Order.String() }

func (n Naive) Generator(d space.Dims) (Generator, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !n.Order.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, n.Order)
	}
	return &naiveGen{
		total: d.TotalSteps(),
		order: n.Order,
		ext:   n.Order.extents(d),
	}, nil
}

type naiveGen struct {
	total int
	order Order
	ext   [3]int
}

func (g *naiveGen) Len() int { return g.total }

func (g *naiveGen) At(t int) space.MacStep {
	return g.order.step(space.MacStep{}, decode(t, g.ext))
}
