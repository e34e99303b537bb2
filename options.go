package tilemap

// Option configures a [Map] during creation.
//
// Example:
//
//	// Rectangular map, no overhang:
//	m, err := tilemap.NewMap(64, 64, atlas, tilemap.Pt(16, 16))
//
//	// Axonometric map with perspective overhang and atlas padding:
//	m, err := tilemap.NewMap(64, 64, atlas, tilemap.Pt(32, 16),
//		tilemap.WithProjection(tilemap.Axonometric),
//		tilemap.WithPadding(tilemap.Pt(2, 2), tilemap.Pt(1, 1), tilemap.Pt(1, 1)),
//		tilemap.WithPerspectiveOverhang(),
//	)
type Option func(*mapOptions)

// mapOptions holds optional configuration for Map creation.
type mapOptions struct {
	projection Projection
	placement  Matrix

	innerPadding     Point
	outerTopLeft     Point
	outerBottomRight Point

	anchor    Point
	anchorSet bool

	overhangMode OverhangMode
	maxLevels    uint32

	tiles   *IndexGrid
	sampler TileSampler
}

// defaultMapOptions returns the default map options.
func defaultMapOptions() mapOptions {
	return mapOptions{
		projection: Rectangular,
		placement:  Identity(),
	}
}

// WithProjection sets the map projection. The default is
// [Rectangular], which renders tiles in a plain rectangular grid. The
// projection's anchor point is adopted unless overridden with
// [WithAnchorPoint].
func WithProjection(p Projection) Option {
	return func(o *mapOptions) {
		o.projection = p
	}
}

// WithPlacement sets the placement transform mapping the map's local
// space into world space, for maps that are translated or rotated
// independently of their contents. The default is the identity. The
// transform must be invertible; [NewMap] rejects singular matrices.
func WithPlacement(m Matrix) Option {
	return func(o *mapOptions) {
		o.placement = m
	}
}

// WithPadding specifies the padding in the atlas image.
// inner is the padding between tiles, topLeft the padding above and
// left of the atlas, bottomRight the padding below and right of it.
//
// These values must be exact: they determine how many tiles the atlas
// holds in each direction, and [NewMap] fails with [ErrAtlasGrid] if
// that does not come out integral.
func WithPadding(inner, topLeft, bottomRight Point) Option {
	return func(o *mapOptions) {
		o.innerPadding = inner
		o.outerTopLeft = topLeft
		o.outerBottomRight = bottomRight
	}
}

// WithAnchorPoint overrides the projection's tile anchor point.
// (0, 0) is a tile's top-left corner, (1, 1) its bottom-right.
func WithAnchorPoint(p Point) Option {
	return func(o *mapOptions) {
		o.anchor = p
		o.anchorSet = true
	}
}

// WithDominanceOverhang renders the map in dominance overhang mode:
// tiles with a higher atlas index draw on top of tiles with a lower
// index, spilling into the padding area around their cell.
//
// Every query samples each neighbor whose index lies within maxLevels
// above the home tile's, so large values cost proportionally more.
func WithDominanceOverhang(maxLevels uint32) Option {
	return func(o *mapOptions) {
		o.overhangMode = OverhangDominance
		o.maxLevels = maxLevels
	}
}

// WithPerspectiveOverhang renders the map in perspective overhang
// mode: neighbor directions pointing away from the viewer (under the
// projection's depth row) draw behind the home tile, their opposites
// draw in front.
func WithPerspectiveOverhang() Option {
	return func(o *mapOptions) {
		o.overhangMode = OverhangPerspective
	}
}

// WithTiles supplies the tile-index grid. Its dimensions must match
// the map size. Without this option the map starts with a zero-filled
// grid.
func WithTiles(g *IndexGrid) Option {
	return func(o *mapOptions) {
		o.tiles = g
	}
}

// WithTileSampler injects a custom per-tile sampler in place of the
// default atlas sampler. See [TileSampler].
func WithTileSampler(s TileSampler) Option {
	return func(o *mapOptions) {
		o.sampler = s
	}
}
