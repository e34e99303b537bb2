package tilemap

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// tileColor returns a distinct, exactly-representable color for an
// atlas tile index.
func tileColor(idx int) color.NRGBA {
	return color.NRGBA{
		R: uint8(20 + idx*13),
		G: uint8(200 - idx*11),
		B: uint8(40 + idx*7),
		A: 255,
	}
}

// testAtlas builds an atlas of nx*ny solid-color tiles with optional
// padding. The padding area is opaque white so bleed acceptance is
// distinguishable from rejection (which samples as transparent).
func testAtlas(t *testing.T, nx, ny, tileW, tileH int, inner, outerTL, outerBR Point, filter Filter) *Atlas {
	t.Helper()

	w := int(outerTL.X+outerBR.X) + nx*tileW + (nx-1)*int(inner.X)
	h := int(outerTL.Y+outerBR.Y) + ny*tileH + (ny-1)*int(inner.Y)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	for idx := 0; idx < nx*ny; idx++ {
		ox := int(outerTL.X) + (idx%nx)*(tileW+int(inner.X))
		oy := int(outerTL.Y) + (idx/nx)*(tileH+int(inner.Y))
		for y := 0; y < tileH; y++ {
			for x := 0; x < tileW; x++ {
				img.SetNRGBA(ox+x, oy+y, tileColor(idx))
			}
		}
	}

	atlas, err := NewAtlas(img, filter)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return atlas
}

// rgbaOf converts a test tile color to the float form Sample returns.
func rgbaOf(c color.NRGBA) RGBA {
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func TestNewMapValidation(t *testing.T) {
	atlas := testAtlas(t, 2, 2, 16, 16, Point{}, Point{}, Point{}, FilterNearest)

	if _, err := NewMap(0, 4, atlas, Pt(16, 16)); err == nil {
		t.Error("NewMap accepted zero map width")
	}
	if _, err := NewMap(4, 4, nil, Pt(16, 16)); err == nil {
		t.Error("NewMap accepted nil atlas")
	}
	if _, err := NewMap(4, 4, atlas, Pt(0, 16)); err == nil {
		t.Error("NewMap accepted zero tile width")
	}

	// Tile size that does not divide the 32x32 atlas.
	if _, err := NewMap(4, 4, atlas, Pt(12, 12)); err == nil {
		t.Error("NewMap accepted a non-integral atlas grid")
	}

	singular := Projection{XX: 1, XY: 2, YX: 2, YY: 4}
	if _, err := NewMap(4, 4, atlas, Pt(16, 16), WithProjection(singular)); err == nil {
		t.Error("NewMap accepted a singular projection")
	}

	if _, err := NewMap(4, 4, atlas, Pt(16, 16), WithPlacement(Scale(0, 1))); err == nil {
		t.Error("NewMap accepted a singular placement transform")
	}

	if _, err := NewMap(4, 4, atlas, Pt(16, 16), WithTiles(NewIndexGrid(3, 4))); err == nil {
		t.Error("NewMap accepted an index grid of the wrong size")
	}
}

func TestDerivedAtlasGrid(t *testing.T) {
	atlas := testAtlas(t, 4, 3, 8, 8, Pt(2, 2), Pt(3, 5), Pt(1, 1), FilterNearest)
	m, err := NewMap(4, 4, atlas, Pt(8, 8), WithPadding(Pt(2, 2), Pt(3, 5), Pt(1, 1)))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	nx, ny := m.NumTiles()
	if nx != 4 || ny != 3 {
		t.Errorf("NumTiles = %dx%d, want 4x3", nx, ny)
	}
}

func TestWorldToMapRoundTrip(t *testing.T) {
	atlas := testAtlas(t, 2, 2, 16, 16, Point{}, Point{}, Point{}, FilterNearest)

	placements := map[string]Matrix{
		"identity":         Identity(),
		"translated":       Translate(120, -45),
		"rotated":          Rotate(0.7),
		"composed":         Translate(30, 40).Multiply(Rotate(-1.2)).Multiply(Scale(2, 2)),
		"skewedProjection": Identity(),
	}
	projections := map[string]Projection{
		"rectangular": Rectangular,
		"axonometric": Axonometric,
	}

	points := []Point{
		{X: 0, Y: 0}, {X: 0.5, Y: 0.5}, {X: 3.25, Y: 1.75},
		{X: -2.5, Y: 7.125}, {X: 10, Y: -4.5},
	}

	for pname, proj := range projections {
		for tname, placement := range placements {
			m, err := NewMap(8, 8, atlas, Pt(16, 16),
				WithProjection(proj), WithPlacement(placement))
			if err != nil {
				t.Fatalf("%s/%s: NewMap: %v", pname, tname, err)
			}

			for _, p := range points {
				got := m.WorldToMap(m.MapToWorld(p))
				if math.Abs(got.X-p.X) > 1e-4 || math.Abs(got.Y-p.Y) > 1e-4 {
					t.Errorf("%s/%s: round trip of %v = %v", pname, tname, p, got)
				}
			}
		}
	}
}

func TestMapPositionAt(t *testing.T) {
	atlas := testAtlas(t, 2, 2, 16, 16, Point{}, Point{}, Point{}, FilterNearest)
	m, err := NewMap(4, 4, atlas, Pt(16, 16))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	pos := m.MapPositionAt(m.MapToWorld(Pt(2.5, 2.5)))
	if pos.TileX != 2 || pos.TileY != 2 {
		t.Errorf("tile = (%d, %d), want (2, 2)", pos.TileX, pos.TileY)
	}
	if math.Abs(pos.Offset.X-8) > 1e-9 || math.Abs(pos.Offset.Y-8) > 1e-9 {
		t.Errorf("offset = %v, want (8, 8)", pos.Offset)
	}
}

// TestSampleEndToEnd is the reference scenario: a 4x4 map over a 2x2
// atlas, every cell index 0 except (2, 2) which holds 1. The center of
// tile (2, 2) must resolve to the color of atlas cell (1, 0) with no
// blending.
func TestSampleEndToEnd(t *testing.T) {
	atlas := testAtlas(t, 2, 2, 16, 16, Point{}, Point{}, Point{}, FilterNearest)
	m, err := NewMap(4, 4, atlas, Pt(16, 16))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	m.Tiles().Set(2, 2, 1)

	got := m.Sample(m.MapToWorld(Pt(2.5, 2.5)), SampleOptions{})
	want := rgbaOf(tileColor(1))
	if got != want {
		t.Errorf("Sample = %v, want atlas cell (1,0) color %v", got, want)
	}
}

func TestSampleOutsideSurface(t *testing.T) {
	atlas := testAtlas(t, 2, 2, 16, 16, Point{}, Point{}, Point{}, FilterNearest)
	m, err := NewMap(4, 4, atlas, Pt(16, 16))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	if got := m.Sample(m.MapToWorld(Pt(-1.5, 0.5)), SampleOptions{}); got != Transparent {
		t.Errorf("Sample outside surface = %v, want transparent", got)
	}
}

func TestSampleMix(t *testing.T) {
	atlas := testAtlas(t, 2, 2, 16, 16, Point{}, Point{}, Point{}, FilterNearest)
	m, err := NewMap(4, 4, atlas, Pt(16, 16))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	world := m.MapToWorld(Pt(0.5, 0.5))
	plain := m.Sample(world, SampleOptions{})

	full := m.Sample(world, SampleOptions{MixColor: RGB(1, 0, 0), MixLevel: 1})
	want := plain.Mul(RGB(1, 0, 0))
	if !colorNear(full, want, 1e-12) {
		t.Errorf("full mix = %v, want %v", full, want)
	}

	half := m.Sample(world, SampleOptions{MixColor: RGB(1, 0, 0), MixLevel: 0.5})
	want = plain.Lerp(plain.Mul(RGB(1, 0, 0)), 0.5)
	if !colorNear(half, want, 1e-12) {
		t.Errorf("half mix = %v, want %v", half, want)
	}
}

func TestCustomTileSampler(t *testing.T) {
	atlas := testAtlas(t, 2, 2, 16, 16, Point{}, Point{}, Point{}, FilterNearest)

	var gotAnimation float64
	sampler := TileSamplerFunc(func(index uint32, tileX, tileY int, offset Point, animation float64) RGBA {
		gotAnimation = animation
		return RGBA{R: float64(index), A: 1}
	})

	m, err := NewMap(4, 4, atlas, Pt(16, 16), WithTileSampler(sampler))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	m.Tiles().Set(1, 1, 3)

	got := m.Sample(m.MapToWorld(Pt(1.5, 1.5)), SampleOptions{Animation: 2.5})
	if got.R != 3 {
		t.Errorf("custom sampler result = %v, want R=3", got)
	}
	if gotAnimation != 2.5 {
		t.Errorf("animation state = %v, want 2.5", gotAnimation)
	}
}

func TestWorldSize(t *testing.T) {
	atlas := testAtlas(t, 2, 2, 16, 16, Point{}, Point{}, Point{}, FilterNearest)

	m, err := NewMap(4, 4, atlas, Pt(16, 16))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	if got := m.WorldSize(); got != Pt(64, 64) {
		t.Errorf("rectangular WorldSize = %v, want (64, 64)", got)
	}

	m, err = NewMap(2, 2, atlas, Pt(16, 16), WithProjection(Axonometric))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	if got := m.WorldSize(); got != Pt(32, 32) {
		t.Errorf("axonometric WorldSize = %v, want (32, 32)", got)
	}
}
