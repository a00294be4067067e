package pathfind

import (
	"math"
)

// NoCost marks an absent Path.
const NoCost = -1.0

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets of c. The slice is shared; do not modify it.
func Offsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// String returns "4" or "8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	default:
		return "invalid"
	}
}

// Edge is one directed step between two grid cells.
// Length is the Euclidean distance between the endpoints; Bridge marks a
// sampled long-range connection rather than a neighbor move.
type Edge struct {
	X1, Y1 int
	X2, Y2 int
	Length float64
	Bridge bool
}

// NewEdge builds the edge (x1,y1)→(x2,y2) and computes its length.
func NewEdge(x1, y1, x2, y2 int, bridge bool) Edge {
	return Edge{
		X1: x1, Y1: y1,
		X2: x2, Y2: y2,
		Length: math.Hypot(float64(x2-x1), float64(y2-y1)),
		Bridge: bridge,
	}
}

// From returns the source cell.
func (e Edge) From() Cell { return Cell{e.X1, e.Y1} }

// To returns the destination cell.
func (e Edge) To() Cell { return Cell{e.X2, e.Y2} }

// Reverse returns the reciprocal edge.
func (e Edge) Reverse() Edge {
	return Edge{X1: e.X2, Y1: e.Y2, X2: e.X1, Y2: e.Y1, Length: e.Length, Bridge: e.Bridge}
}

// Path is the result of a search. An absent path has Cost == NoCost;
// callers must check Found before reading Points.
type Path struct {
	Points []Cell
	Cost   float64
}

// NotFound returns the absent path.
func NotFound() Path {
	return Path{Cost: NoCost}
}

// Found reports whether p is a real route.
func (p Path) Found() bool {
	return p.Cost != NoCost && len(p.Points) > 0
}

// Len returns the number of points in p.
func (p Path) Len() int { return len(p.Points) }

// Steps returns the edges between consecutive points. A step that is not a
// 4/8-neighbor move is reported as a bridge; the search never relaxes a
// bridge shorter than MinBridgeSpan, so the two cannot be confused.
func (p Path) Steps() []Edge {
	if len(p.Points) < 2 {
		return nil
	}
	steps := make([]Edge, 0, len(p.Points)-1)
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		neighbor := dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
		steps = append(steps, NewEdge(a.X, a.Y, b.X, b.Y, !neighbor))
	}
	return steps
}
