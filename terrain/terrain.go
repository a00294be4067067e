package terrain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// NewHeightMap builds a width×height HeightMap from row-major values.
// The slice is copied so later writes by the caller cannot reach the map.
func NewHeightMap(width, height int, values []float64) (*HeightMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadLength, len(values), width*height)
	}
	hm := &HeightMap{width: width, height: height, values: make([]float64, len(values))}
	copy(hm.values, values)

	return hm, nil
}

// HeightMapFromRows builds a HeightMap from rows[y][x].
func HeightMapFromRows(rows [][]float64) (*HeightMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	flat := make([]float64, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}

	return &HeightMap{width: w, height: h, values: flat}, nil
}

// Width returns the number of columns.
func (hm *HeightMap) Width() int { return hm.width }

// Height returns the number of rows.
func (hm *HeightMap) Height() int { return hm.height }

// InBounds reports whether (x,y) lies within the map.
func (hm *HeightMap) InBounds(x, y int) bool {
	return x >= 0 && x < hm.width && y >= 0 && y < hm.height
}

// At returns the sample at (x,y). It panics if (x,y) is out of bounds.
func (hm *HeightMap) At(x, y int) float64 {
	return hm.values[y*hm.width+x]
}

// NewTypeMap builds a width×height TypeMap from row-major tiles.
func NewTypeMap(width, height int, tiles []TileType) (*TypeMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadLength, len(tiles), width*height)
	}
	tm := &TypeMap{width: width, height: height, tiles: make([]TileType, len(tiles))}
	copy(tm.tiles, tiles)

	return tm, nil
}

// TypeMapFromRows builds a TypeMap from rows[y][x].
func TypeMapFromRows(rows [][]TileType) (*TypeMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	flat := make([]TileType, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}

	return &TypeMap{width: w, height: h, tiles: flat}, nil
}

// Uniform returns a width×height TypeMap where every cell is t.
func Uniform(width, height int, t TileType) (*TypeMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	tiles := make([]TileType, width*height)
	for i := range tiles {
		tiles[i] = t
	}

	return &TypeMap{width: width, height: height, tiles: tiles}, nil
}

// Width returns the number of columns.
func (tm *TypeMap) Width() int { return tm.width }

// Height returns the number of rows.
func (tm *TypeMap) Height() int { return tm.height }

// InBounds reports whether (x,y) lies within the map.
func (tm *TypeMap) InBounds(x, y int) bool {
	return x >= 0 && x < tm.width && y >= 0 && y < tm.height
}

// At returns the tile at (x,y). It panics if (x,y) is out of bounds.
func (tm *TypeMap) At(x, y int) TileType {
	return tm.tiles[y*tm.width+x]
}

// Count returns how many cells hold tile t.
func (tm *TypeMap) Count(t TileType) int {
	n := 0
	for _, v := range tm.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// Classify derives a TypeMap from elevation and a forest mask:
// cells whose scaled height is at or below waterHeight become Water,
// remaining cells whose mask sample is 0 become Forest, the rest Normal.
// A nil mask yields no forest.
func Classify(heights, forestMask *HeightMap, heightScale, waterHeight float64) (*TypeMap, error) {
	if heights == nil {
		return nil, ErrNilMap
	}
	if forestMask != nil && (forestMask.width != heights.width || forestMask.height != heights.height) {
		return nil, fmt.Errorf("%w: heights %dx%d, mask %dx%d", ErrSizeMismatch,
			heights.width, heights.height, forestMask.width, forestMask.height)
	}
	tiles := make([]TileType, len(heights.values))
	for i, h := range heights.values {
		switch {
		case h*heightScale <= waterHeight:
			tiles[i] = Water
		case forestMask != nil && forestMask.values[i] == 0:
			tiles[i] = Forest
		default:
			tiles[i] = Normal
		}
	}

	return &TypeMap{width: heights.width, height: heights.height, tiles: tiles}, nil
}

// New bundles heights and types into a Terrain. Both maps must have the
// same dimensions; a mismatch is a construction error, never a search error.
func New(heights *HeightMap, types *TypeMap, opts Options) (*Terrain, error) {
	if heights == nil || types == nil {
		return nil, ErrNilMap
	}
	if heights.width != types.width || heights.height != types.height {
		return nil, fmt.Errorf("%w: heights %dx%d, types %dx%d", ErrSizeMismatch,
			heights.width, heights.height, types.width, types.height)
	}

	return &Terrain{Heights: heights, Types: types, Options: opts}, nil
}

// Width returns the number of grid columns.
func (t *Terrain) Width() int { return t.Heights.width }

// Height returns the number of grid rows.
func (t *Terrain) Height() int { return t.Heights.height }

// InBounds reports whether (x,y) lies within the grid.
func (t *Terrain) InBounds(x, y int) bool { return t.Heights.InBounds(x, y) }

// CellSize returns the world distance between neighboring samples along X and Z.
// A single-sample axis has size 0.
func (t *Terrain) CellSize() (dx, dz float64) {
	if w := t.Heights.width; w > 1 {
		dx = t.WorldSize.X / float64(w-1)
	}
	if h := t.Heights.height; h > 1 {
		dz = t.WorldSize.Y / float64(h-1)
	}
	return dx, dz
}

// GridToWorld maps cell (x,y) to its world position; Y is the scaled elevation.
func (t *Terrain) GridToWorld(x, y int) r3.Vec {
	dx, dz := t.CellSize()
	return r3.Vec{
		X: t.Origin.X + float64(x)*dx,
		Y: t.Origin.Y + t.Heights.At(x, y)*t.HeightScale,
		Z: t.Origin.Z + float64(y)*dz,
	}
}

// GridToWorldAboveWater is GridToWorld with Y raised to the water plane when
// the ground lies below it.
func (t *Terrain) GridToWorldAboveWater(x, y int) r3.Vec {
	p := t.GridToWorld(x, y)
	p.Y = math.Max(p.Y, t.Origin.Y+t.WaterHeight)
	return p
}
