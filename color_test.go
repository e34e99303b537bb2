package tilemap

import (
	"image/color"
	"testing"
)

func TestColorRoundTrip(t *testing.T) {
	c := color.NRGBA{R: 51, G: 102, B: 204, A: 255}
	got := FromColor(c).Color()
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

func TestPremultiply(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0.25, A: 0.5}
	got := c.Premultiply()
	want := RGBA{R: 0.5, G: 0.25, B: 0.125, A: 0.5}
	if !colorNear(got, want, 1e-12) {
		t.Errorf("Premultiply = %v, want %v", got, want)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := RGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	b := RGBA{R: 0.9, G: 0.8, B: 0.7, A: 0.6}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}

func TestMul(t *testing.T) {
	a := RGBA{R: 0.5, G: 1, B: 0, A: 1}
	b := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	got := a.Mul(b)
	want := RGBA{R: 0.25, G: 0.5, B: 0, A: 1}
	if !colorNear(got, want, 1e-12) {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}
