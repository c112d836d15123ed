package matrix

import "testing"

func TestMul(t *testing.T) {
	a := New(2, 2)
	copy(a.Data, []float64{1, 2, 3, 4})
	b := New(2, 2)
	copy(b.Data, []float64{5, 6, 7, 8})

	c := Mul(a, b)

	want := []float64{19, 22, 43, 50}
	for i, v := range want {
		if c.Data[i] != v {
			t.Errorf("c.Data[%d] = %v, want %v", i, c.Data[i], v)
		}
	}
}

func TestMulRectangular(t *testing.T) {
	// 2x3 times 3x1
	a := New(2, 3)
	copy(a.Data, []float64{1, 2, 3, 4, 5, 6})
	b := New(3, 1)
	copy(b.Data, []float64{1, 1, 1})

	c := Mul(a, b)

	if c.Rows != 2 || c.Cols != 1 {
		t.Fatalf("shape %dx%d, want 2x1", c.Rows, c.Cols)
	}
	if c.At(0, 0) != 6 || c.At(1, 0) != 15 {
		t.Errorf("got [%v %v], want [6 15]", c.At(0, 0), c.At(1, 0))
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(4, 5, 42)
	b := Random(4, 5, 42)
	if !Equal(a, b, 0) {
		t.Error("same seed should produce identical matrices")
	}

	c := Random(4, 5, 43)
	if Equal(a, c, 0) {
		t.Error("different seeds should produce different matrices")
	}
}

func TestEqualShapeMismatch(t *testing.T) {
	if Equal(New(2, 3), New(3, 2), 1e-9) {
		t.Error("shape mismatch should not be equal")
	}
}

func TestAddAndZero(t *testing.T) {
	m := New(2, 2)
	if got := m.Add(1, 1, 2.5); got != 2.5 {
		t.Errorf("Add returned %v, want 2.5", got)
	}
	if got := m.Add(1, 1, 0.5); got != 3.0 {
		t.Errorf("Add returned %v, want 3.0", got)
	}
	m.Zero()
	if m.At(1, 1) != 0 {
		t.Error("Zero did not clear the matrix")
	}
}

func TestCounts(t *testing.T) {
	c := NewCounts(2, 2)
	c.Inc(0, 1)
	c.Inc(0, 1)
	c.Inc(1, 0)

	if c.At(0, 1) != 2 {
		t.Errorf("count at (0,1) = %d, want 2", c.At(0, 1))
	}
	if c.Max() != 2 {
		t.Errorf("max = %d, want 2", c.Max())
	}
	c.Zero()
	if c.Max() != 0 {
		t.Error("Zero did not clear counters")
	}
}
