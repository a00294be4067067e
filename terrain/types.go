package terrain

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// TileType is the terrain classification of a single cell.
type TileType uint8

const (
	// Normal is open, walkable ground.
	Normal TileType = iota
	// Water cannot be crossed on foot.
	Water
	// Forest is walkable but slow.
	Forest
)

// String returns the lower-case tile name.
func (t TileType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Water:
		return "water"
	case Forest:
		return "forest"
	default:
		return "unknown"
	}
}

// HeightMap is a dense row-major grid of elevation samples in [0,1].
// It is immutable once built.
type HeightMap struct {
	width, height int
	values        []float64
}

// TypeMap is a dense row-major grid of TileType values.
// It is immutable once built.
type TypeMap struct {
	width, height int
	tiles         []TileType
}

// Options tunes how a Terrain maps grid cells into world space.
type Options struct {
	// HeightScale multiplies every elevation sample.
	HeightScale float64
	// WaterHeight is the world height of the water plane; cells at or below
	// it are classified as Water by Classify.
	WaterHeight float64
	// Origin is the world position of cell (0,0).
	Origin r3.Vec
	// WorldSize is the world extent covered by the whole grid along X and Z.
	WorldSize r2.Vec
}

// DefaultOptions returns Options with HeightScale=1, no water, the grid
// centred on the origin and a 100×100 world extent.
func DefaultOptions() Options {
	return Options{
		HeightScale: 1,
		WaterHeight: -1,
		Origin:      r3.Vec{X: -50, Y: 0, Z: -50},
		WorldSize:   r2.Vec{X: 100, Y: 100},
	}
}

// Terrain bundles the elevation and classification of one map together with
// its world transform. Width and Height are shared by both maps.
type Terrain struct {
	Heights *HeightMap
	Types   *TypeMap
	Options
}
