package tilemap

import (
	stdimage "image"
	"io"

	"github.com/gogpu/tilemap/internal/image"
)

// Filter selects how atlas texels are interpolated when sampling.
// The filter is a host decision; the core applies whatever is
// configured.
type Filter uint8

const (
	// FilterNearest selects the closest texel. The usual choice for
	// pixel-art tiles: no bleeding between texels, crisp edges.
	FilterNearest Filter = iota

	// FilterBilinear interpolates between the 4 closest texels.
	FilterBilinear

	// FilterBicubic interpolates over a 4x4 texel neighborhood.
	FilterBicubic
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	return image.InterpolationMode(f).String()
}

// Atlas is an image containing all tiles of a map arranged in a
// row-major grid, addressable by normalized [0,1]² coordinates.
//
// The atlas is owned by the host and treated as a read-only snapshot
// during an evaluation pass.
type Atlas struct {
	img    *image.Buf
	filter Filter
	mips   *image.MipmapChain
}

// NewAtlas wraps a standard image as a tile atlas with the given
// filter.
func NewAtlas(src stdimage.Image, filter Filter) (*Atlas, error) {
	buf, err := image.FromImage(src)
	if err != nil {
		return nil, err
	}
	return &Atlas{img: buf, filter: filter}, nil
}

// LoadAtlas loads an atlas image from a file. PNG, JPEG, WebP, and BMP
// are supported.
func LoadAtlas(path string, filter Filter) (*Atlas, error) {
	buf, err := image.Load(path)
	if err != nil {
		return nil, err
	}
	return &Atlas{img: buf, filter: filter}, nil
}

// DecodeAtlas reads an atlas image from r, auto-detecting the format.
func DecodeAtlas(r io.Reader, filter Filter) (*Atlas, error) {
	buf, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &Atlas{img: buf, filter: filter}, nil
}

// Size returns the atlas dimensions in pixels.
func (a *Atlas) Size() Point {
	w, h := a.img.Bounds()
	return Point{X: float64(w), Y: float64(h)}
}

// Filter returns the configured texel filter.
func (a *Atlas) Filter() Filter { return a.filter }

// GenerateMipmaps precomputes downscaled versions of the atlas for
// [Atlas.SampleLevel]. Without mipmaps every level samples the
// original image.
func (a *Atlas) GenerateMipmaps() {
	a.mips = image.GenerateMipmaps(a.img)
}

// Sample returns the straight-alpha color at normalized coordinates
// (u, v) using the configured filter.
func (a *Atlas) Sample(u, v float64) RGBA {
	r, g, b, al := image.Sample(a.img, u, v, image.InterpolationMode(a.filter))
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(al) / 255,
	}
}

// SampleLevel samples the given mipmap level at normalized coordinates
// (u, v). Levels are clamped to the generated chain; level 0 is the
// full-resolution image.
func (a *Atlas) SampleLevel(u, v float64, level int) RGBA {
	buf := a.mips.Level(level)
	if buf == nil {
		buf = a.img
	}
	r, g, b, al := image.Sample(buf, u, v, image.InterpolationMode(a.filter))
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(al) / 255,
	}
}

// MipLevels returns the number of generated mipmap levels (0 if
// [Atlas.GenerateMipmaps] has not been called).
func (a *Atlas) MipLevels() int {
	return a.mips.NumLevels()
}
