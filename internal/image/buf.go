// Package image provides the pixel buffer and sampling support for
// tilemap atlases. Buffers store straight-alpha RGBA, 8 bits per
// channel, and are addressable by normalized [0,1]² coordinates with a
// selectable interpolation mode.
package image

import (
	"errors"
	"image"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// Buf is a straight-alpha RGBA pixel buffer.
//
// Thread safety: Buf is safe for concurrent read access. Write
// operations require external synchronization; a tilemap evaluation
// pass only reads.
type Buf struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewBuf creates a new zeroed buffer with the given dimensions.
func NewBuf(width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := width * 4
	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// FromImage copies a standard image into a new buffer.
// Premultiplied source formats are converted to straight alpha.
func FromImage(img image.Image) (*Buf, error) {
	bounds := img.Bounds()
	buf, err := NewBuf(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA: row copies, no per-pixel conversion.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < buf.height; y++ {
			srcRow := src.Pix[(y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride+(bounds.Min.X-src.Rect.Min.X)*4:]
			copy(buf.data[y*buf.stride:(y+1)*buf.stride], srcRow[:buf.stride])
		}
		return buf, nil
	}

	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; x++ {
			r, g, b, a := straightRGBA8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			buf.SetRGBA(x, y, r, g, b, a)
		}
	}
	return buf, nil
}

// Width returns the buffer width in pixels.
func (b *Buf) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buf) Height() int { return b.height }

// Bounds returns the width and height of the buffer.
func (b *Buf) Bounds() (w, h int) { return b.width, b.height }

// IsEmpty reports whether the buffer holds no pixels.
func (b *Buf) IsEmpty() bool { return b == nil || len(b.data) == 0 }

// GetRGBA returns the straight-alpha components of the pixel at (x, y).
// Out-of-bounds coordinates return transparent black.
func (b *Buf) GetRGBA(x, y int) (r, g, bl, a byte) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0, 0
	}
	i := y*b.stride + x*4
	return b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]
}

// SetRGBA sets the pixel at (x, y). Out-of-bounds coordinates are
// ignored.
func (b *Buf) SetRGBA(x, y int, r, g, bl, a byte) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.stride + x*4
	b.data[i] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// ToNRGBA returns the buffer content as a standard *image.NRGBA view.
// The returned image shares the buffer's pixel data.
func (b *Buf) ToNRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.stride,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// straightRGBA8 converts a color.Color to straight-alpha 8-bit channels.
func straightRGBA8(c interface {
	RGBA() (r, g, b, a uint32)
}) (byte, byte, byte, byte) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0, 0, 0, 0
	}
	// RGBA() returns alpha-premultiplied 16-bit channels.
	return byte((r*0xff + a/2) / a),
		byte((g*0xff + a/2) / a),
		byte((b*0xff + a/2) / a),
		byte(a >> 8)
}
