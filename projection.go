package tilemap

import "math"

// Projection determines how fractional map coordinates relate to local
// space coordinates. The linear part is normalized to tile dimensions:
// a projected unit is one full tile width or height.
//
//	| XX  XY |   map x
//	| YX  YY | · map y
//	| ZX  ZY |
//
// The third row does not contribute to the projected position; it
// assigns a depth to each map direction and is only consulted in
// perspective overhang mode, where neighbor directions with negative
// projected depth render behind the current tile.
//
// AnchorPoint is the relative reference point within a tile that
// integer map coordinates land on: (0, 0) is the top-left corner,
// (1, 1) the bottom-right.
type Projection struct {
	XX, XY float64
	YX, YY float64
	ZX, ZY float64

	AnchorPoint Point
}

// Rectangular renders every tile as-is in a rectangular grid.
// The y axis is flipped so tiles are rendered right side up, and depth
// decreases toward positive map y, so in perspective overhang mode
// tiles lower on the screen overlap tiles higher up.
var Rectangular = Projection{
	XX: 1, XY: 0,
	YX: 0, YY: -1,
	ZX: 0, ZY: -1,
}

// Axonometric assumes the tiles are projections of square ground cells
// in an axonometric (e.g. isometric) projection: each tile is drawn as
// a diamond, the anchor sits at the tile's center-left, the map x axis
// runs from the anchor to the bottom-center and the map y axis to the
// top-center.
var Axonometric = Projection{
	XX: 0.5, XY: 0.5,
	YX: -0.5, YY: 0.5,
	ZX: 0.5, ZY: -0.5,

	AnchorPoint: Point{X: 0, Y: 0.5},
}

// Apply projects a fractional map coordinate into local space
// (still normalized to tile dimensions).
func (p Projection) Apply(v Point) Point {
	return Point{
		X: p.XX*v.X + p.XY*v.Y,
		Y: p.YX*v.X + p.YY*v.Y,
	}
}

// Depth returns the projected depth of a map-space direction. Negative
// depth means the direction points away from the viewer.
func (p Projection) Depth(v Point) float64 {
	return p.ZX*v.X + p.ZY*v.Y
}

// Invert returns a projection applying the inverse linear map, and
// whether the linear part is invertible. The depth row and anchor
// point are not meaningful on the inverse and are left zero.
func (p Projection) Invert() (Projection, bool) {
	det := p.XX*p.YY - p.XY*p.YX
	if math.Abs(det) < 1e-10 {
		return Projection{}, false
	}

	invDet := 1.0 / det
	return Projection{
		XX: p.YY * invDet, XY: -p.XY * invDet,
		YX: -p.YX * invDet, YY: p.XX * invDet,
	}, true
}
