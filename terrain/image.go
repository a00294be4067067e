package terrain

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io"
	"os"
)

// DecodeHeightMap decodes any registered image format into a HeightMap,
// converting pixels to 16-bit grayscale and normalizing to [0,1].
func DecodeHeightMap(r io.Reader) (*HeightMap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("terrain: decode image: %w", err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyGrid
	}
	values := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			values[y*w+x] = float64(g.Y) / 0xffff
		}
	}
	return &HeightMap{width: w, height: h, values: values}, nil
}

// LoadHeightMap reads and decodes the image at path.
func LoadHeightMap(path string) (*HeightMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("terrain: open %q: %w", path, err)
	}
	defer f.Close()

	hm, err := DecodeHeightMap(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return hm, nil
}

// LoadImages builds a Terrain from an elevation image and a forest-mask
// image of the same size, classifying cells with Classify. An empty
// typePath means no forest.
func LoadImages(heightPath, typePath string, opts Options) (*Terrain, error) {
	heights, err := LoadHeightMap(heightPath)
	if err != nil {
		return nil, err
	}
	var mask *HeightMap
	if typePath != "" {
		if mask, err = LoadHeightMap(typePath); err != nil {
			return nil, err
		}
	}
	types, err := Classify(heights, mask, opts.HeightScale, opts.WaterHeight)
	if err != nil {
		return nil, err
	}
	return New(heights, types, opts)
}
