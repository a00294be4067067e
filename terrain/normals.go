package terrain

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// NormalMap returns one unit surface normal per cell (row-major), using
// central differences of the scaled height field; border cells repeat their
// own sample for the missing neighbor.
// Complexity: O(W×H).
func NormalMap(hm *HeightMap, scale float64) []r3.Vec {
	w, h := hm.width, hm.height
	out := make([]r3.Vec, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := hm.At(x, y)
			hL, hR, hD, hU := c, c, c, c
			if x > 0 {
				hL = hm.At(x-1, y)
			}
			if x < w-1 {
				hR = hm.At(x+1, y)
			}
			if y > 0 {
				hD = hm.At(x, y-1)
			}
			if y < h-1 {
				hU = hm.At(x, y+1)
			}
			tangent := r3.Vec{X: 2, Y: (hR - hL) * scale}
			bitangent := r3.Vec{Y: (hU - hD) * scale, Z: 2}
			out[y*w+x] = r3.Unit(r3.Cross(bitangent, tangent))
		}
	}
	return out
}

// Gradient returns the downhill gradient of hm per cell (row-major):
// half the difference between the previous and next sample on each axis,
// falling back to one-sided differences on the border.
// Complexity: O(W×H).
func Gradient(hm *HeightMap) []r2.Vec {
	w, h := hm.width, hm.height
	out := make([]r2.Vec, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var g r2.Vec
			switch {
			case w == 1:
			case x == 0:
				g.X = hm.At(x, y) - hm.At(x+1, y)
			case x == w-1:
				g.X = hm.At(x-1, y) - hm.At(x, y)
			default:
				g.X = hm.At(x-1, y) - hm.At(x+1, y)
			}
			switch {
			case h == 1:
			case y == 0:
				g.Y = hm.At(x, y) - hm.At(x, y+1)
			case y == h-1:
				g.Y = hm.At(x, y-1) - hm.At(x, y)
			default:
				g.Y = hm.At(x, y-1) - hm.At(x, y+1)
			}
			out[y*w+x] = r2.Scale(0.5, g)
		}
	}
	return out
}
