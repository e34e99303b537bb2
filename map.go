package tilemap

import (
	"errors"
	"fmt"
	"math"
)

// Map construction errors.
var (
	// ErrNilAtlas is returned when no atlas is supplied.
	ErrNilAtlas = errors.New("tilemap: nil atlas")

	// ErrInvalidMapSize is returned when the map dimensions are not positive.
	ErrInvalidMapSize = errors.New("tilemap: invalid map size")

	// ErrInvalidTileSize is returned when the tile dimensions are not positive.
	ErrInvalidTileSize = errors.New("tilemap: invalid tile size")

	// ErrSingularProjection is returned when the projection has no inverse.
	ErrSingularProjection = errors.New("tilemap: projection is not invertible")

	// ErrSingularPlacement is returned when the placement transform has no inverse.
	ErrSingularPlacement = errors.New("tilemap: placement transform is not invertible")

	// ErrAtlasGrid is returned when tile size and padding do not divide
	// the atlas into an integral number of tiles.
	ErrAtlasGrid = errors.New("tilemap: atlas does not divide into an integral number of tiles")

	// ErrGridSize is returned when a supplied index grid does not match
	// the map dimensions.
	ErrGridSize = errors.New("tilemap: index grid size does not match map size")
)

// Map is the immutable per-pass description of a tilemap: grid
// geometry, atlas geometry, projection, placement, and overhang
// policy, together with the tile-index grid and atlas image.
//
// All derived values (atlas grid dimensions, inverse matrices, world
// bounding box, overhang direction tables) are computed once by
// [NewMap], never per query. The contained [IndexGrid] and [Atlas] may
// be mutated by the host between evaluation passes only.
type Map struct {
	mapWidth  int
	mapHeight int
	tileSize  Point

	atlas     *Atlas
	atlasSize Point

	innerPadding     Point
	outerTopLeft     Point
	outerBottomRight Point

	anchor Point

	proj    Projection
	invProj Projection

	placement    Matrix
	invPlacement Matrix

	worldSize   Point
	worldOffset Point

	nTilesX int
	nTilesY int

	overhang  OverhangMode
	maxLevels uint32

	// Per-direction local sampling offsets and perspective direction
	// sets, precomputed from the projection (one table per map, no
	// per-query branching on projection kind).
	neighborDeltas [8]Point
	underhang      []int
	overhangDirs   []int

	tiles   *IndexGrid
	sampler TileSampler
}

// MapPosition locates a query point on the map: the integer grid cell
// the point falls in, and the point's pixel displacement from that
// tile's anchor point. Offset is in texel space (y grows downward).
type MapPosition struct {
	TileX, TileY int
	Offset       Point
}

// NewMap builds a map from required geometry plus options, deriving
// and validating all dependent values. The zero option set gives a
// rectangular projection, identity placement, no padding, no overhang,
// a zero-filled index grid, and atlas-based tile sampling.
func NewMap(width, height int, atlas *Atlas, tileSize Point, opts ...Option) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidMapSize, width, height)
	}
	if atlas == nil {
		return nil, ErrNilAtlas
	}
	if tileSize.X <= 0 || tileSize.Y <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidTileSize, tileSize.X, tileSize.Y)
	}

	o := defaultMapOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Map{
		mapWidth:         width,
		mapHeight:        height,
		tileSize:         tileSize,
		atlas:            atlas,
		atlasSize:        atlas.Size(),
		innerPadding:     o.innerPadding,
		outerTopLeft:     o.outerTopLeft,
		outerBottomRight: o.outerBottomRight,
		anchor:           o.projection.AnchorPoint,
		proj:             o.projection,
		placement:        o.placement,
		overhang:         o.overhangMode,
		maxLevels:        o.maxLevels,
		tiles:            o.tiles,
	}
	if o.anchorSet {
		m.anchor = o.anchor
	}

	var ok bool
	if m.invProj, ok = m.proj.Invert(); !ok {
		return nil, ErrSingularProjection
	}
	if m.invPlacement, ok = m.placement.Invert(); !ok {
		return nil, ErrSingularPlacement
	}

	if err := m.deriveAtlasGrid(); err != nil {
		return nil, err
	}
	m.deriveWorldBounds()
	m.deriveNeighborTables()

	if m.tiles == nil {
		m.tiles = NewIndexGrid(width, height)
	} else if m.tiles.Width() != width || m.tiles.Height() != height {
		return nil, fmt.Errorf("%w: grid %dx%d, map %dx%d",
			ErrGridSize, m.tiles.Width(), m.tiles.Height(), width, height)
	}

	m.sampler = o.sampler
	if m.sampler == nil {
		m.sampler = atlasSampler{m}
	}

	Logger().Debug("tilemap: map built",
		"map_size", fmt.Sprintf("%dx%d", width, height),
		"atlas_tiles", fmt.Sprintf("%dx%d", m.nTilesX, m.nTilesY),
		"overhang", m.overhang.String(),
		"underhang_dirs", len(m.underhang),
		"overhang_dirs", len(m.overhangDirs))

	return m, nil
}

// deriveAtlasGrid computes the atlas grid dimensions from the atlas
// size, tile size, and padding. Tile size and padding must divide the
// atlas exactly; a mismatch here silently shifts every tile rect, so
// it is rejected up front.
func (m *Map) deriveAtlasGrid() error {
	inner := m.atlasSize.Sub(m.outerTopLeft).Sub(m.outerBottomRight)
	n := inner.Add(m.innerPadding).Div(m.innerPadding.Add(m.tileSize))

	const eps = 0.01
	if math.Abs(n.X-math.Round(n.X)) > eps || math.Abs(n.Y-math.Round(n.Y)) > eps {
		return fmt.Errorf("%w: computed %gx%g", ErrAtlasGrid, n.X, n.Y)
	}
	m.nTilesX = int(math.Round(n.X))
	m.nTilesY = int(math.Round(n.Y))
	if m.nTilesX < 1 || m.nTilesY < 1 {
		return fmt.Errorf("%w: computed %gx%g", ErrAtlasGrid, n.X, n.Y)
	}
	return nil
}

// deriveWorldBounds computes the bounding box of the projected map and
// the offset that centers it on the local-space origin. The offset is
// chosen so that tile (0, 0)'s anchor lands wherever the projection
// puts it relative to the centered bounding box (for an axonometric
// projection that is the vertically centered left edge).
func (m *Map) deriveWorldBounds() {
	project := func(p Point) Point {
		return m.proj.Apply(p).Scale(m.tileSize)
	}

	w := float64(m.mapWidth)
	h := float64(m.mapHeight)

	low := project(Point{})
	high := low
	for _, corner := range []Point{{X: w}, {Y: h}, {X: w, Y: h}} {
		pos := project(corner)
		low = low.Min(pos)
		high = high.Max(pos)
	}

	m.worldSize = high.Sub(low)
	m.worldOffset = m.worldSize.Mul(-0.5).Sub(low)
}

// MapSize returns the map dimensions in tiles.
func (m *Map) MapSize() (w, h int) { return m.mapWidth, m.mapHeight }

// TileSize returns the tile dimensions in pixels.
func (m *Map) TileSize() Point { return m.tileSize }

// WorldSize returns the size of the projected map's bounding box in
// local-space units, before the placement transform. Hosts use this to
// size the surface that displays the map.
func (m *Map) WorldSize() Point { return m.worldSize }

// NumTiles returns the derived atlas grid dimensions.
func (m *Map) NumTiles() (x, y int) { return m.nTilesX, m.nTilesY }

// Overhang returns the configured overhang mode.
func (m *Map) Overhang() OverhangMode { return m.overhang }

// Tiles returns the map's tile-index grid. Mutate it only between
// evaluation passes.
func (m *Map) Tiles() *IndexGrid { return m.tiles }

// Atlas returns the map's tile atlas.
func (m *Map) Atlas() *Atlas { return m.atlas }

// mapToLocal converts a fractional map coordinate to local space.
func (m *Map) mapToLocal(p Point) Point {
	return m.proj.Apply(p).Scale(m.tileSize).Add(m.worldOffset)
}

// MapToWorld converts a fractional map coordinate to world space.
// Integer coordinates land on tile anchor points; (0.5, 0.5) is the
// center of tile (0, 0) under the rectangular projection.
//
// MapToWorld is the exact left-inverse of [Map.WorldToMap].
func (m *Map) MapToWorld(p Point) Point {
	return m.placement.TransformPoint(m.mapToLocal(p))
}

// WorldToMap converts a world-space position to a fractional map
// coordinate.
func (m *Map) WorldToMap(world Point) Point {
	local := m.invPlacement.TransformPoint(world)
	return m.invProj.Apply(local.Sub(m.worldOffset).Div(m.tileSize))
}

// MapPositionAt decomposes a world-space position into the grid cell
// it falls in and its texel offset from that tile's anchor point.
func (m *Map) MapPositionAt(world Point) MapPosition {
	local := m.invPlacement.TransformPoint(world)
	frac := m.invProj.Apply(local.Sub(m.worldOffset).Div(m.tileSize))
	tile := frac.Floor()

	// Displacement from the tile's anchor, flipped into y-down texel
	// space.
	d := local.Sub(m.mapToLocal(tile))
	return MapPosition{
		TileX:  int(tile.X),
		TileY:  int(tile.Y),
		Offset: Point{X: d.X, Y: -d.Y},
	}
}

// AtlasIndexToPosition returns the pixel origin of a tile's cell in
// the atlas. Indices are decomposed row-major, x fastest: cell
// (index mod nTilesX, index div nTilesX). The index is not bounds
// checked here; [Map.SampleTile] rejects out-of-range indices.
func (m *Map) AtlasIndexToPosition(index uint32) Point {
	cx := float64(index % uint32(m.nTilesX))
	cy := float64(index / uint32(m.nTilesX))
	return Point{X: cx, Y: cy}.Scale(m.tileSize.Add(m.innerPadding)).Add(m.outerTopLeft)
}

// SampleTile samples the atlas for a tile index at a texel offset
// relative to the tile's anchor point, honoring the half-padding bleed
// limit: a tile may spill at most innerPadding/2 into its neighbors'
// space, offsets beyond that sample as transparent. The bound is
// inclusive, an offset exactly at tileSize + innerPadding/2 is still
// accepted.
//
// Indices at or beyond the atlas tile count sample as transparent
// rather than wrapping or clamping, so a stale index is visible
// instead of displaying the wrong tile.
func (m *Map) SampleTile(index uint32, offset Point) RGBA {
	if index >= uint32(m.nTilesX*m.nTilesY) {
		return Transparent
	}

	rect := offset.Add(m.anchor.Scale(m.tileSize))
	halfPad := m.innerPadding.Mul(0.5)
	if rect.X < -halfPad.X || rect.X > m.tileSize.X+halfPad.X ||
		rect.Y < -halfPad.Y || rect.Y > m.tileSize.Y+halfPad.Y {
		return Transparent
	}

	total := m.AtlasIndexToPosition(index).Add(rect)
	return m.atlas.Sample(total.X/m.atlasSize.X, total.Y/m.atlasSize.Y)
}

// SampleOptions carries the optional per-query inputs: an instance
// tint and the animation state passed through to the tile sampler.
type SampleOptions struct {
	// MixColor tints the composited color by component-wise
	// multiplication; MixLevel interpolates between the untinted (0)
	// and fully tinted (1) result.
	MixColor RGBA
	MixLevel float64

	// Animation is an opaque scalar forwarded to the tile sampler,
	// typically a time value driving per-tile animation. The default
	// atlas sampler ignores it.
	Animation float64
}

// Sample resolves a world-space position to one straight-alpha color:
// home tile lookup, atlas sampling, neighbor overhang compositing, and
// tinting. Positions outside the map surface return transparent.
//
// Sample is a pure function of the map snapshot and its inputs; calls
// are independent and safe to issue concurrently.
func (m *Map) Sample(world Point, opts SampleOptions) RGBA {
	pos := m.MapPositionAt(world)
	if !m.tiles.InBounds(pos.TileX, pos.TileY) {
		return Transparent
	}
	home := m.tiles.AtUnchecked(pos.TileX, pos.TileY)

	var c RGBA
	switch m.overhang {
	case OverhangDominance:
		c = m.compositeDominance(pos, home, opts.Animation)
	case OverhangPerspective:
		c = m.compositePerspective(pos, home, opts.Animation)
	default:
		c = m.sampler.SampleTile(home, pos.TileX, pos.TileY, pos.Offset, opts.Animation)
	}

	if opts.MixLevel != 0 {
		c = c.Lerp(c.Mul(opts.MixColor), opts.MixLevel)
	}
	return c
}
