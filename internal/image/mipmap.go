package image

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// MipmapChain holds pre-computed downscaled versions of an image.
//
// Level 0 is the original full-resolution image; each further level is
// half the size of the previous one, until the largest dimension
// reaches 1 pixel. Sampling a suitable level when the map is zoomed
// out avoids the shimmering that direct nearest sampling produces.
type MipmapChain struct {
	levels []*Buf
}

// GenerateMipmaps creates a mipmap chain from the source image.
//
// Levels are downscaled with a bilinear kernel. The source image
// becomes level 0 and is not copied. Returns nil if src is nil or
// empty.
func GenerateMipmaps(src *Buf) *MipmapChain {
	if src.IsEmpty() {
		return nil
	}

	maxDim := max(src.Width(), src.Height())
	numLevels := 1 + int(math.Floor(math.Log2(float64(maxDim))))

	chain := &MipmapChain{
		levels: make([]*Buf, numLevels),
	}
	chain.levels[0] = src

	for i := 1; i < numLevels; i++ {
		chain.levels[i] = downsample(chain.levels[i-1])
	}

	return chain
}

// downsample creates a half-size version of src.
func downsample(src *Buf) *Buf {
	srcW, srcH := src.Bounds()
	dstW := max(1, srcW/2)
	dstH := max(1, srcH/2)

	dst, err := NewBuf(dstW, dstH)
	if err != nil {
		return nil
	}

	draw.BiLinear.Scale(dst.ToNRGBA(), image.Rect(0, 0, dstW, dstH),
		src.ToNRGBA(), image.Rect(0, 0, srcW, srcH), draw.Src, nil)

	return dst
}

// Level returns the mipmap at the specified level, clamped to the
// chain's range. Level 0 is the original image.
func (m *MipmapChain) Level(n int) *Buf {
	if m == nil || len(m.levels) == 0 {
		return nil
	}
	n = clamp(n, 0, len(m.levels)-1)
	return m.levels[n]
}

// NumLevels returns the number of levels in the chain.
func (m *MipmapChain) NumLevels() int {
	if m == nil {
		return 0
	}
	return len(m.levels)
}
