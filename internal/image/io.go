package image

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Register decoders for the atlas formats we accept beyond PNG.
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode reads an image from r, auto-detecting the format, and returns
// it as a straight-alpha buffer. Supported formats: PNG, JPEG, WebP,
// BMP.
func Decode(r io.Reader) (*Buf, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	buf, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("image: decode %s: %w", format, err)
	}
	return buf, nil
}

// Load loads an image from the given file path, auto-detecting the
// format from its content.
func Load(path string) (*Buf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// EncodePNG writes the buffer to w in PNG format.
func EncodePNG(w io.Writer, b *Buf) error {
	if b.IsEmpty() {
		return ErrInvalidDimensions
	}
	return png.Encode(w, b.ToNRGBA())
}
