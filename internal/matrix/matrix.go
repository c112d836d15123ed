// Package matrix provides the dense operand storage the engine works
// on: row-major float64 matrices plus integer count grids used as
// access-heat overlays.
package matrix

import (
	"math"
	"math/rand"
)

// Dense is a row-major matrix of float64.
type Dense struct {
	Rows, Cols int
	Data       []float64
}

// New returns a zeroed rows x cols matrix.
func New(rows, cols int) *Dense {
	return &Dense{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

func (m *Dense) At(r, c int) float64     { return m.Data[r*m.Cols+c] }
func (m *Dense) Set(r, c int, v float64) { m.Data[r*m.Cols+c] = v }

// Add accumulates v into (r, c) and returns the new value.
func (m *Dense) Add(r, c int, v float64) float64 {
	m.Data[r*m.Cols+c] += v
	return m.Data[r*m.Cols+c]
}

func (m *Dense) Zero() {
	for i := range m.Data {
		m.Data[i] = 0
	}
}

func (m *Dense) Clone() *Dense {
	c := New(m.Rows, m.Cols)
	copy(c.Data, m.Data)
	return c
}

// MaxAbs returns the largest absolute value in m, used to scale heat
// rendering.
func (m *Dense) MaxAbs() float64 {
	max := 0.0
	for _, v := range m.Data {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// Random fills a new matrix with small integer-valued entries from a
// seeded source, so runs are reproducible and exact-arithmetic checks
// stay exact.
func Random(rows, cols int, seed int64) *Dense {
	rng := rand.New(rand.NewSource(seed))
	m := New(rows, cols)
	for i := range m.Data {
		m.Data[i] = float64(rng.Intn(19) - 9)
	}
	return m
}

// Mul computes the reference product a x b with the textbook triple
// loop. a.Cols must equal b.Rows.
func Mul(a, b *Dense) *Dense {
	c := New(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			sum := 0.0
			for k := 0; k < a.Cols; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			c.Set(i, j, sum)
		}
	}
	return c
}

// Equal reports whether a and b have the same shape and agree
// elementwise within tol.
func Equal(a, b *Dense, tol float64) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.Data {
		if math.Abs(a.Data[i]-b.Data[i]) > tol {
			return false
		}
	}
	return true
}

// Counts is a row-major grid of access counters.
type Counts struct {
	Rows, Cols int
	Data       []int
}

func NewCounts(rows, cols int) *Counts {
	return &Counts{
		Rows: rows,
		Cols: cols,
		Data: make([]int, rows*cols),
	}
}

func (m *Counts) At(r, c int) int { return m.Data[r*m.Cols+c] }

// Inc bumps the counter at (r, c) and returns the new count.
func (m *Counts) Inc(r, c int) int {
	m.Data[r*m.Cols+c]++
	return m.Data[r*m.Cols+c]
}

func (m *Counts) Zero() {
	for i := range m.Data {
		m.Data[i] = 0
	}
}

// Max returns the largest counter in m.
func (m *Counts) Max() int {
	max := 0
	for _, v := range m.Data {
		if v > max {
			max = v
		}
	}
	return max
}
