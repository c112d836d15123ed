package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/matcube/internal/space"
)

var allOrders = []Order{IJK, IKJ, JIK, JKI, KIJ, KJI}

func TestNaiveIJKSequence(t *testing.T) {
	gen, err := Naive{Order: IJK}.Generator(space.Dims{M: 2, N: 2, K: 2})
	require.NoError(t, err)
	require.Equal(t, 8, gen.Len())

	want := []space.MacStep{
		{I: 0, J: 0, K: 0}, {I: 0, J: 0, K: 1},
		{I: 0, J: 1, K: 0}, {I: 0, J: 1, K: 1},
		{I: 1, J: 0, K: 0}, {I: 1, J: 0, K: 1},
		{I: 1, J: 1, K: 0}, {I: 1, J: 1, K: 1},
	}
	for n, w := range want {
		assert.Equal(t, w, gen.At(n), "step %d", n)
	}
}

func TestNaiveIKJSequence(t *testing.T) {
	// Middle loop over k: the A element is held while j sweeps.
	gen, err := Naive{Order: IKJ}.Generator(space.Dims{M: 1, N: 2, K: 2})
	require.NoError(t, err)

	want := []space.MacStep{
		{I: 0, J: 0, K: 0}, {I: 0, J: 1, K: 0},
		{I: 0, J: 0, K: 1}, {I: 0, J: 1, K: 1},
	}
	for n, w := range want {
		assert.Equal(t, w, gen.At(n), "step %d", n)
	}
}

func TestNaiveCompleteness(t *testing.T) {
	d := space.Dims{M: 3, N: 4, K: 5}
	for _, order := range allOrders {
		gen, err := Naive{Order: order}.Generator(d)
		require.NoError(t, err)
		assertCoversCube(t, gen, d, order.String())
	}
}

func TestNaiveDeterminism(t *testing.T) {
	d := space.Dims{M: 4, N: 3, K: 2}
	g1, err := Naive{Order: KJI}.Generator(d)
	require.NoError(t, err)
	g2, err := Naive{Order: KJI}.Generator(d)
	require.NoError(t, err)

	for n := 0; n < g1.Len(); n++ {
		require.Equal(t, g1.At(n), g2.At(n), "step %d", n)
	}
}

func TestNaiveInvalidConfig(t *testing.T) {
	_, err := Naive{Order: IJK}.Generator(space.Dims{M: 0, N: 2, K: 2})
	assert.ErrorIs(t, err, space.ErrInvalidDimension)

	_, err = Naive{Order: Order{AxisI, AxisI, AxisK}}.Generator(space.Dims{M: 2, N: 2, K: 2})
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

// assertCoversCube checks the primary generator invariant: every
// triple of the cube emitted exactly once, nothing outside it.
func assertCoversCube(t *testing.T, gen Generator, d space.Dims, label string) {
	t.Helper()
	require.Equal(t, d.TotalSteps(), gen.Len(), "%s: step count", label)

	seen := make(map[space.MacStep]int, gen.Len())
	for n := 0; n < gen.Len(); n++ {
		s := gen.At(n)
		require.True(t, s.In(d), "%s: step %d out of range: %v", label, n, s)
		seen[s]++
	}
	require.Len(t, seen, d.TotalSteps(), "%s: distinct triples", label)
	for s, c := range seen {
		require.Equal(t, 1, c, "%s: %v visited %d times", label, s, c)
	}
}
