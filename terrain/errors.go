package terrain

import "errors"

var (
	// ErrEmptyGrid indicates a map with no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrBadLength indicates a flat value slice that does not hold width*height samples.
	ErrBadLength = errors.New("terrain: value count does not match width*height")
	// ErrSizeMismatch indicates elevation and terrain-type maps of different dimensions.
	ErrSizeMismatch = errors.New("terrain: height and type maps have different sizes")
	// ErrNilMap indicates a nil height or type map passed to New.
	ErrNilMap = errors.New("terrain: height and type maps must be non-nil")
)
