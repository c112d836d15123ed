package metrics

import "github.com/san-kum/matcube/internal/space"

// Operand selects which matrix an OperandSwitch watches.
type Operand int

const (
	OperandA Operand = iota
	OperandB
	OperandC
)

func (o Operand) String() string {
	switch o {
	case OperandA:
		return "a"
	case OperandB:
		return "b"
	case OperandC:
		return "c"
	}
	return "?"
}

// OperandSwitch counts consecutive steps that touch a different
// element of the watched matrix. Lower means better temporal
// locality: naive ijk holds C[i,j] across the whole inner loop while
// jki changes it every step.
type OperandSwitch struct {
	operand  Operand
	last     space.Coord
	seen     bool
	switches int
}

func NewOperandSwitch(op Operand) *OperandSwitch {
	return &OperandSwitch{operand: op}
}

func (m *OperandSwitch) Name() string { return "switches_" + m.operand.String() }

func (m *OperandSwitch) Observe(step space.MacStep) {
	var cur space.Coord
	switch m.operand {
	case OperandA:
		cur = step.A()
	case OperandB:
		cur = step.B()
	default:
		cur = step.C()
	}
	if m.seen && cur != m.last {
		m.switches++
	}
	m.last = cur
	m.seen = true
}

func (m *OperandSwitch) Value() float64 { return float64(m.switches) }

func (m *OperandSwitch) Reset() {
	m.seen = false
	m.switches = 0
}
