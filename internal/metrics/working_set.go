package metrics

import "github.com/san-kum/matcube/internal/space"

// WorkingSet reports how many distinct A and B elements the last
// window steps touched, a proxy for the cache footprint of the
// traversal. Tiled walks keep this flat; naive walks with a bad
// order let it grow with the matrix.
type WorkingSet struct {
	window int
	recent []space.MacStep
}

func NewWorkingSet(window int) *WorkingSet {
	return &WorkingSet{window: window}
}

func (m *WorkingSet) Name() string { return "working_set" }

func (m *WorkingSet) Observe(step space.MacStep) {
	m.recent = append(m.recent, step)
	if len(m.recent) > m.window {
		m.recent = m.recent[1:]
	}
}

func (m *WorkingSet) Value() float64 {
	type key struct {
		mat   Operand
		coord space.Coord
	}
	distinct := make(map[key]struct{}, 2*len(m.recent))
	for _, s := range m.recent {
		distinct[key{OperandA, s.A()}] = struct{}{}
		distinct[key{OperandB, s.B()}] = struct{}{}
	}
	return float64(len(distinct))
}

func (m *WorkingSet) Reset() { m.recent = m.recent[:0] }
