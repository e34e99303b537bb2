package tilemap

// TileSampler produces the color of one tile at one texel offset. The
// default sampler reads the map's atlas; hosts may inject their own to
// add per-tile effects such as tinting or frame animation without
// touching the addressing and compositing logic.
//
// Implementations must be pure with respect to one evaluation pass:
// the compositor may call them any number of times per query point, in
// any order across query points.
type TileSampler interface {
	// SampleTile returns the straight-alpha color of tile index at the
	// given texel offset from the tile's anchor point. tileX and tileY
	// identify the map cell being sampled (the home tile or one of its
	// neighbors); animation is the per-query animation state.
	SampleTile(index uint32, tileX, tileY int, offset Point, animation float64) RGBA
}

// TileSamplerFunc adapts a plain function to the [TileSampler]
// interface.
type TileSamplerFunc func(index uint32, tileX, tileY int, offset Point, animation float64) RGBA

// SampleTile calls f.
func (f TileSamplerFunc) SampleTile(index uint32, tileX, tileY int, offset Point, animation float64) RGBA {
	return f(index, tileX, tileY, offset, animation)
}

// atlasSampler is the default TileSampler: plain atlas sampling via
// [Map.SampleTile], ignoring the tile position and animation state.
type atlasSampler struct {
	m *Map
}

func (s atlasSampler) SampleTile(index uint32, _, _ int, offset Point, _ float64) RGBA {
	return s.m.SampleTile(index, offset)
}
