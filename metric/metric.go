// Package metric provides the cost functions a route search combines:
// travelled distance, slope steepness, terrain classification and arbitrary
// scalar fields shaped by a Curve.
//
// Every metric returns a value in a bounded range (normally [0,1]) so that
// weighted sums stay comparable. Only Terrain returns +Inf, to forbid walking
// into water.
package metric

import (
	"math"

	"github.com/katalvlaran/terrapath/pathfind"
	"github.com/katalvlaran/terrapath/terrain"
)

// maxStep is the length of a diagonal neighbor step.
const maxStep = math.Sqrt2

// Defaults for Terrain.
const (
	DefaultForestPenalty = 10.0
	DefaultBridgeFactor  = 100.0
)

// Distance scores an edge by its length divided by √2, so neighbor steps
// cost 1/√2 (orthogonal) or 1 (diagonal). Bridges are not special-cased.
type Distance struct{}

// Evaluate implements pathfind.Metric.
func (Distance) Evaluate(e pathfind.Edge) float64 {
	return e.Length / maxStep
}

// HeightSampler is the read-only elevation a Slope metric needs.
type HeightSampler interface {
	At(x, y int) float64
}

// Slope scores the steepness of an edge: the absolute scaled height
// difference over the edge length, divided by MaxSlope and clamped to [0,1].
// MaxSlope <= 0 is treated as 1.
type Slope struct {
	Heights  HeightSampler
	Scale    float64
	MaxSlope float64
}

// Evaluate implements pathfind.Metric.
func (s Slope) Evaluate(e pathfind.Edge) float64 {
	h1 := s.Heights.At(e.X1, e.Y1) * s.Scale
	h2 := s.Heights.At(e.X2, e.Y2) * s.Scale
	slope := math.Abs(h2-h1) / e.Length
	maxSlope := s.MaxSlope
	if maxSlope <= 0 {
		maxSlope = 1
	}
	return clamp01(slope / maxSlope)
}

// TypeSampler is the read-only classification a Terrain metric needs.
type TypeSampler interface {
	At(x, y int) terrain.TileType
}

// Terrain scores an edge by the classification of its endpoints:
//
//   - +Inf for a non-bridge edge touching Water;
//   - Length×BridgeFactor for any bridge, a flat toll proportional to span;
//   - ForestPenalty for an edge touching Forest;
//   - 0 otherwise.
type Terrain struct {
	Types         TypeSampler
	ForestPenalty float64
	BridgeFactor  float64
}

// DefaultTerrain returns a Terrain metric with DefaultForestPenalty and DefaultBridgeFactor.
func DefaultTerrain(types TypeSampler) Terrain {
	return Terrain{Types: types, ForestPenalty: DefaultForestPenalty, BridgeFactor: DefaultBridgeFactor}
}

// Evaluate implements pathfind.Metric.
func (t Terrain) Evaluate(e pathfind.Edge) float64 {
	a := t.Types.At(e.X1, e.Y1)
	b := t.Types.At(e.X2, e.Y2)
	switch {
	case e.Bridge:
		return e.Length * t.BridgeFactor
	case a == terrain.Water || b == terrain.Water:
		return math.Inf(1)
	case a == terrain.Forest || b == terrain.Forest:
		return t.ForestPenalty
	default:
		return 0
	}
}

// Field scores an edge by Curve(|v2 − v1|) over any scalar field, e.g. the
// raw height map with a user-drawn response curve.
type Field struct {
	Values HeightSampler
	Curve  *Curve
}

// Evaluate implements pathfind.Metric.
func (f Field) Evaluate(e pathfind.Edge) float64 {
	dv := math.Abs(f.Values.At(e.X2, e.Y2) - f.Values.At(e.X1, e.Y1))
	return f.Curve.At(dv)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
