package metrics

import (
	"testing"

	"github.com/san-kum/matcube/internal/space"
)

// naive-ijk walk of the 2x2x2 cube.
var ijkSteps = []space.MacStep{
	{I: 0, J: 0, K: 0}, {I: 0, J: 0, K: 1},
	{I: 0, J: 1, K: 0}, {I: 0, J: 1, K: 1},
	{I: 1, J: 0, K: 0}, {I: 1, J: 0, K: 1},
	{I: 1, J: 1, K: 0}, {I: 1, J: 1, K: 1},
}

func observeAll(m Metric, steps []space.MacStep) {
	for _, s := range steps {
		m.Observe(s)
	}
}

func TestOperandSwitchC(t *testing.T) {
	// ijk holds C[i,j] for the whole k loop: 4 runs, 3 switches.
	m := NewOperandSwitch(OperandC)
	observeAll(m, ijkSteps)
	if m.Value() != 3 {
		t.Errorf("C switches = %v, want 3", m.Value())
	}
}

func TestOperandSwitchA(t *testing.T) {
	// ijk changes the A element on every consecutive step here.
	m := NewOperandSwitch(OperandA)
	observeAll(m, ijkSteps)
	if m.Value() != 7 {
		t.Errorf("A switches = %v, want 7", m.Value())
	}
}

func TestOperandSwitchAHeldByIKJ(t *testing.T) {
	// ikj on 1x2x2 holds A[i,k] while j sweeps: one switch only.
	ikj := []space.MacStep{
		{I: 0, J: 0, K: 0}, {I: 0, J: 1, K: 0},
		{I: 0, J: 0, K: 1}, {I: 0, J: 1, K: 1},
	}
	m := NewOperandSwitch(OperandA)
	observeAll(m, ikj)
	if m.Value() != 1 {
		t.Errorf("A switches = %v, want 1", m.Value())
	}
}

func TestOperandSwitchReset(t *testing.T) {
	m := NewOperandSwitch(OperandB)
	observeAll(m, ijkSteps)
	m.Reset()
	if m.Value() != 0 {
		t.Error("Reset did not clear the counter")
	}
	m.Observe(ijkSteps[0])
	if m.Value() != 0 {
		t.Error("first step after reset cannot be a switch")
	}
}

func TestWorkingSetFullWindow(t *testing.T) {
	m := NewWorkingSet(8)
	observeAll(m, ijkSteps)
	// 4 distinct A elements + 4 distinct B elements.
	if m.Value() != 8 {
		t.Errorf("working set = %v, want 8", m.Value())
	}
}

func TestWorkingSetSlidingWindow(t *testing.T) {
	m := NewWorkingSet(2)
	observeAll(m, ijkSteps)
	// Last two steps touch 2 A elements and 2 B elements.
	if m.Value() != 4 {
		t.Errorf("working set = %v, want 4", m.Value())
	}
}

func TestWorkingSetReset(t *testing.T) {
	m := NewWorkingSet(4)
	observeAll(m, ijkSteps)
	m.Reset()
	if m.Value() != 0 {
		t.Error("Reset did not clear the window")
	}
}
