package pathfind

import (
	"errors"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Defaults for BridgeGenerator.
const (
	DefaultMinSamples    = 100
	DefaultSampleDivisor = 100
	DefaultMinSpan       = 50
	DefaultMaxSpan       = 200

	// MinBridgeSpan is the shortest bridge, in cells along its longer axis.
	// Shorter edges would coincide with neighbor moves and are dropped.
	MinBridgeSpan = 2
)

var (
	// ErrBadSpan indicates a bridge span range with min < 2 or max < min.
	ErrBadSpan = errors.New("pathfind: bridge span must satisfy 2 <= min <= max")

	// ErrBadSamples indicates a non-positive sample floor or divisor.
	ErrBadSamples = errors.New("pathfind: bridge sample floor and divisor must be positive")
)

// compass lists the 8 ray directions a bridge may follow.
var compass = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// BridgeGenerator samples long-range bridge edges: straight rays in the
// 8 compass directions from randomly drawn source cells.
// It is not safe for concurrent use because its RandSource is not.
type BridgeGenerator struct {
	rng           RandSource
	minSamples    int
	sampleDivisor int
	minSpan       int
	maxSpan       int
}

// BridgeOption configures a BridgeGenerator.
type BridgeOption func(*BridgeGenerator)

// WithSpan sets the inclusive range ray lengths are drawn from.
// Panics with ErrBadSpan unless 2 <= lo <= hi.
func WithSpan(lo, hi int) BridgeOption {
	if lo < MinBridgeSpan || hi < lo {
		panic(ErrBadSpan.Error())
	}
	return func(g *BridgeGenerator) {
		g.minSpan, g.maxSpan = lo, hi
	}
}

// WithSamples sets the sample count to max(floor, width*height/divisor).
// Panics with ErrBadSamples on non-positive arguments.
func WithSamples(floor, divisor int) BridgeOption {
	if floor <= 0 || divisor <= 0 {
		panic(ErrBadSamples.Error())
	}
	return func(g *BridgeGenerator) {
		g.minSamples, g.sampleDivisor = floor, divisor
	}
}

// NewBridgeGenerator returns a generator drawing from src. A nil src
// uses the default deterministic seed.
func NewBridgeGenerator(src RandSource, opts ...BridgeOption) *BridgeGenerator {
	if src == nil {
		src = rngFromSeed(0)
	}
	g := &BridgeGenerator{
		rng:           src,
		minSamples:    DefaultMinSamples,
		sampleDivisor: DefaultSampleDivisor,
		minSpan:       DefaultMinSpan,
		maxSpan:       DefaultMaxSpan,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewSeededBridgeGenerator returns a generator drawing from a *rand.Rand
// seeded with seed. It yields the same edges a search configured with
// WithBridgeSeed(seed) uses. Seed 0 selects a fixed default seed.
func NewSeededBridgeGenerator(seed int64, opts ...BridgeOption) *BridgeGenerator {
	return NewBridgeGenerator(rngFromSeed(seed), opts...)
}

// Samples returns how many source cells Generate draws on a width×height grid.
func (g *BridgeGenerator) Samples(width, height int) int {
	return max(g.minSamples, width*height/g.sampleDivisor)
}

// Generate draws Samples(width, height) source cells. For each it draws one
// span, then for every compass direction whose endpoint at that span lies in
// the grid it emits the forward edge and its reciprocal, both marked Bridge.
// Duplicate edges are dropped; output order follows the draws.
//
// Complexity: O(S) time and memory for S samples.
func (g *BridgeGenerator) Generate(width, height int) []Edge {
	if width <= 0 || height <= 0 {
		return nil
	}
	n := g.Samples(width, height)
	seen := make(map[[4]int]struct{}, n)
	out := make([]Edge, 0, n)
	add := func(x1, y1, x2, y2 int) {
		key := [4]int{x1, y1, x2, y2}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, NewEdge(x1, y1, x2, y2, true))
	}

	for i := 0; i < n; i++ {
		sx := g.rng.Intn(width)
		sy := g.rng.Intn(height)
		span := g.minSpan + g.rng.Intn(g.maxSpan-g.minSpan+1)
		for _, d := range compass {
			dx, dy := sx+d[0]*span, sy+d[1]*span
			if dx < 0 || dx >= width || dy < 0 || dy >= height {
				continue
			}
			add(sx, sy, dx, dy)
			add(dx, dy, sx, sy)
		}
	}
	return out
}

// BridgeIndex groups bridge edges by source cell and keeps their sources in
// an R-tree for proximity queries.
type BridgeIndex struct {
	bySource map[Cell][]Edge
	tree     *rtreego.Rtree
	count    int
}

// bridgeEntry stores one edge in the R-tree, keyed by its source point.
type bridgeEntry struct {
	edge Edge
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (b *bridgeEntry) Bounds() rtreego.Rect { return b.box }

// NewBridgeIndex indexes edges. Edges whose endpoints coincide are skipped.
func NewBridgeIndex(edges []Edge) *BridgeIndex {
	idx := &BridgeIndex{
		bySource: make(map[Cell][]Edge),
		tree:     rtreego.NewTree(2, 25, 50),
	}
	for _, e := range edges {
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			continue
		}
		idx.bySource[e.From()] = append(idx.bySource[e.From()], e)
		idx.tree.Insert(&bridgeEntry{
			edge: e,
			box:  rtreego.Point{float64(e.X1), float64(e.Y1)}.ToRect(0.01),
		})
		idx.count++
	}
	return idx
}

// Len returns the number of indexed edges.
func (idx *BridgeIndex) Len() int { return idx.count }

// From returns the edges leaving c. The slice is shared; do not modify it.
func (idx *BridgeIndex) From(c Cell) []Edge {
	return idx.bySource[c]
}

// Near returns the edges whose source lies within radius of c, ordered by
// source distance, then source, then destination.
func (idx *BridgeIndex) Near(c Cell, radius float64) []Edge {
	if radius <= 0 || idx.count == 0 {
		return nil
	}
	box, err := rtreego.NewRect(
		rtreego.Point{float64(c.X) - radius, float64(c.Y) - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return nil
	}
	var out []Edge
	for _, s := range idx.tree.SearchIntersect(box) {
		e := s.(*bridgeEntry).edge
		if math.Hypot(float64(e.X1-c.X), float64(e.Y1-c.Y)) <= radius {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di := math.Hypot(float64(out[i].X1-c.X), float64(out[i].Y1-c.Y))
		dj := math.Hypot(float64(out[j].X1-c.X), float64(out[j].Y1-c.Y))
		if di != dj {
			return di < dj
		}
		a, b := out[i], out[j]
		if a.X1 != b.X1 || a.Y1 != b.Y1 {
			return a.Y1 < b.Y1 || (a.Y1 == b.Y1 && a.X1 < b.X1)
		}
		return a.Y2 < b.Y2 || (a.Y2 == b.Y2 && a.X2 < b.X2)
	})
	return out
}
