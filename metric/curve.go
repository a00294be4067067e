package metric

import (
	"errors"
	"math"
	"sort"
)

// Interpolation selects how a Curve blends between control points.
type Interpolation int

const (
	// Linear interpolates straight segments.
	Linear Interpolation = iota
	// Cosine eases in and out of every control point.
	Cosine
)

// MinPointGap is the smallest X distance allowed between two control points.
const MinPointGap = 0.01

// ErrAnchor indicates an attempt to remove one of the two anchor points.
var ErrAnchor = errors.New("metric: curve anchors cannot be removed")

// ErrPointIndex indicates a control-point index out of range.
var ErrPointIndex = errors.New("metric: curve point index out of range")

// ErrPointTooClose indicates a new point closer than MinPointGap to an existing one.
var ErrPointTooClose = errors.New("metric: curve point too close to an existing point")

// CurvePoint is one control point; both coordinates lie in [0,1].
type CurvePoint struct {
	X, Y float64
}

// Curve is a response function on [0,1] defined by control points sorted
// by X. The first and last points are anchors pinned to X=0 and X=1.
// A Curve is not safe for concurrent mutation; evaluating it concurrently is.
type Curve struct {
	mode   Interpolation
	points []CurvePoint
}

// NewCurve returns the identity curve (0,0)→(1,1).
func NewCurve(mode Interpolation) *Curve {
	return &Curve{mode: mode, points: []CurvePoint{{0, 0}, {1, 1}}}
}

// Mode returns the interpolation mode.
func (c *Curve) Mode() Interpolation { return c.mode }

// SetMode changes the interpolation mode.
func (c *Curve) SetMode(mode Interpolation) { c.mode = mode }

// Points returns a copy of the control points.
func (c *Curve) Points() []CurvePoint {
	return append([]CurvePoint(nil), c.points...)
}

// CanAddPoint reports whether a point at x keeps MinPointGap to all others.
func (c *Curve) CanAddPoint(x float64) bool {
	x = clamp01(x)
	for _, p := range c.points {
		if math.Abs(x-p.X) < MinPointGap {
			return false
		}
	}
	return true
}

// AddPoint inserts (x,y), clamped to [0,1]².
func (c *Curve) AddPoint(x, y float64) error {
	if !c.CanAddPoint(x) {
		return ErrPointTooClose
	}
	c.points = append(c.points, CurvePoint{clamp01(x), clamp01(y)})
	sort.Slice(c.points, func(i, j int) bool { return c.points[i].X < c.points[j].X })
	return nil
}

// RemovePoint deletes the control point at idx. Anchors cannot be removed.
func (c *Curve) RemovePoint(idx int) error {
	if idx < 0 || idx >= len(c.points) {
		return ErrPointIndex
	}
	if idx == 0 || idx == len(c.points)-1 {
		return ErrAnchor
	}
	c.points = append(c.points[:idx], c.points[idx+1:]...)
	return nil
}

// MovePoint moves the point at idx to (x,y). Anchors keep their X; inner
// points stay at least MinPointGap away from their neighbors.
func (c *Curve) MovePoint(idx int, x, y float64) error {
	if idx < 0 || idx >= len(c.points) {
		return ErrPointIndex
	}
	last := len(c.points) - 1
	switch idx {
	case 0:
		x = 0
	case last:
		x = 1
	default:
		lo := c.points[idx-1].X + MinPointGap
		hi := c.points[idx+1].X - MinPointGap
		x = math.Max(lo, math.Min(hi, x))
	}
	c.points[idx] = CurvePoint{clamp01(x), clamp01(y)}
	return nil
}

// At evaluates the curve at x, clamped to [0,1].
func (c *Curve) At(x float64) float64 {
	x = clamp01(x)
	i := sort.Search(len(c.points), func(i int) bool { return c.points[i].X >= x })
	switch {
	case i == 0:
		return c.points[0].Y
	case i >= len(c.points):
		return c.points[len(c.points)-1].Y
	}
	a, b := c.points[i-1], c.points[i]
	span := b.X - a.X
	if span <= 0 {
		return b.Y
	}
	t := (x - a.X) / span
	if c.mode == Cosine {
		t = (1 - math.Cos(t*math.Pi)) / 2
	}
	return a.Y + (b.Y-a.Y)*t
}
