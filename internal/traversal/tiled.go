package traversal

import (
	"fmt"
	"sort"

	"github.com/san-kum/matcube/internal/space"
)

// Tiled partitions each axis into blocks of the given tile sizes and
// enumerates block triples in Outer order, the coordinates inside
// each block in Inner order. When a tile size does not divide its
// axis the edge blocks are partial but still visited in full, so
// every coordinate of the cube appears exactly once.
type Tiled struct {
	TileM, TileN, TileK int
	Outer, Inner        Order
}

func (t Tiled) Name() string {
	return fmt.Sprintf("tiled-%dx%dx%d-%s-%s", t.TileM, t.TileN, t.TileK, t.Outer, t.Inner)
}

func (t Tiled) Generator(d space.Dims) (Generator, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !t.Outer.valid() || !t.Inner.valid() {
		return nil, fmt.Errorf("%w: outer %v, inner %v", ErrInvalidOrder, t.Outer, t.Inner)
	}
	for _, p := range [3][2]int{{t.TileM, d.M}, {t.TileN, d.N}, {t.TileK, d.K}} {
		if p[0] < 1 || p[0] > p[1] {
			return nil, fmt.Errorf("%w: tile %d on axis of length %d", ErrInvalidTile, p[0], p[1])
		}
	}

	tileCounts := space.Dims{
		M: ceilDiv(d.M, t.TileM),
		N: ceilDiv(d.N, t.TileN),
		K: ceilDiv(d.K, t.TileK),
	}
	outerExt := t.Outer.extents(tileCounts)
	numTiles := tileCounts.TotalSteps()

	// Precompute each tile's origin, extent and starting step index.
	// Edge tiles have smaller extents, so step offsets are cumulative
	// rather than a closed form; At binary-searches them.
	g := &tiledGen{
		total:   d.TotalSteps(),
		inner:   t.Inner,
		tiles:   make([]tileSpan, 0, numTiles),
		offsets: make([]int, 0, numTiles),
	}
	offset := 0
	for n := 0; n < numTiles; n++ {
		it, jt, kt := t.Outer.split(decode(n, outerExt))
		base := space.MacStep{I: it * t.TileM, J: jt * t.TileN, K: kt * t.TileK}
		ext := space.Dims{
			M: min(t.TileM, d.M-base.I),
			N: min(t.TileN, d.N-base.J),
			K: min(t.TileK, d.K-base.K),
		}
		g.tiles = append(g.tiles, tileSpan{base: base, ext: t.Inner.extents(ext)})
		g.offsets = append(g.offsets, offset)
		offset += ext.TotalSteps()
	}
	return g, nil
}

// tileSpan is one block of the partition: its origin in the cube and
// its extents arranged in inner loop order.
type tileSpan struct {
	base space.MacStep
	ext  [3]int
}

type tiledGen struct {
	total   int
	inner   Order
	tiles   []tileSpan
	offsets []int // offsets[n] is the step index where tile n begins
}

func (g *tiledGen) Len() int { return g.total }

func (g *tiledGen) At(t int) space.MacStep {
	n := sort.SearchInts(g.offsets, t+1) - 1
	tile := g.tiles[n]
	return g.inner.step(tile.base, decode(t-g.offsets[n], tile.ext))
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
