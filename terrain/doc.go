// Package terrain holds the read-only grid samples a route search reads:
// elevation, terrain classification and the grid-to-world transform.
//
// What:
//
//   - HeightMap: dense row-major elevation samples in [0,1].
//   - TypeMap: dense row-major TileType (Normal, Water, Forest).
//   - Terrain: a HeightMap and a TypeMap of equal size plus world options.
//   - Classify: derives Water from a water plane and Forest from a mask.
//   - Regions: connected dry-land regions, to check reachability on foot.
//   - NormalMap, Gradient: per-cell surface normals and height gradients.
//   - LoadImages: builds a Terrain from grayscale PNG/JPEG files.
//
// Maps are immutable once built and safe for concurrent readers.
//
// Errors:
//
//   - ErrEmptyGrid: map has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadLength: flat value slice does not hold width*height samples.
//   - ErrSizeMismatch: height and type maps differ in size.
//   - ErrNilMap: a required map is nil.
package terrain
