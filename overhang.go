package tilemap

// OverhangMode selects how neighboring tiles composite over or under
// the tile a query point falls in.
type OverhangMode uint8

const (
	// OverhangNone samples only the home tile.
	OverhangNone OverhangMode = iota

	// OverhangDominance renders tiles with a higher atlas index on top
	// of tiles with a lower index, in every direction. This simulates
	// height ordering without 3D geometry: the index doubles as an
	// elevation level.
	OverhangDominance

	// OverhangPerspective renders fixed, projection-dependent neighbor
	// directions behind or in front of the home tile, so tall tiles
	// occlude tiles further away and are occluded by nearer ones.
	OverhangPerspective
)

// String returns a string representation of the overhang mode.
func (o OverhangMode) String() string {
	switch o {
	case OverhangNone:
		return "None"
	case OverhangDominance:
		return "Dominance"
	case OverhangPerspective:
		return "Perspective"
	default:
		return "Unknown"
	}
}

// neighborOffsets is the fixed enumeration order of the 8-connected
// neighborhood. Dominance ties and the within-set perspective order
// are broken by this order; it must never change.
var neighborOffsets = [8][2]int{
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
}

// oppositeDir maps an index in neighborOffsets to the index of the
// opposite direction.
func oppositeDir(i int) int {
	dx, dy := neighborOffsets[i][0], neighborOffsets[i][1]
	for j, d := range neighborOffsets {
		if d[0] == -dx && d[1] == -dy {
			return j
		}
	}
	return i
}

// deriveNeighborTables precomputes, per neighbor direction, the local
// sampling offset delta and (for perspective mode) the underhang and
// overhang direction sets. All of this depends only on the projection,
// so it is a build-time table rather than per-query branching.
//
// The offset delta compensates for projection skew: sampling "neighbor
// tile at this fragment" must land on the same visual point within the
// neighbor's own tile rect, which for direction (dx, dy) means
// shifting the home offset by the projected, y-flipped displacement of
// (-dx, -dy) tiles.
func (m *Map) deriveNeighborTables() {
	for i, d := range neighborOffsets {
		v := m.proj.Apply(Point{X: float64(-d[0]), Y: float64(-d[1])}).Scale(m.tileSize)
		m.neighborDeltas[i] = Point{X: v.X, Y: -v.Y}
	}

	if m.overhang != OverhangPerspective {
		return
	}

	// A direction whose projected depth is negative points away from
	// the viewer: tiles there sit behind the home tile and underlap
	// it. Its opposite has positive depth and overlaps. Directions
	// with zero depth (e.g. the horizontal axis of an axonometric
	// projection) are in neither set.
	m.underhang = m.underhang[:0]
	m.overhangDirs = m.overhangDirs[:0]
	for i, d := range neighborOffsets {
		depth := m.proj.Depth(Point{X: float64(d[0]), Y: float64(d[1])})
		switch {
		case depth < 0:
			m.underhang = append(m.underhang, i)
		case depth > 0:
			m.overhangDirs = append(m.overhangDirs, i)
		}
	}
}

// neighborAt resolves neighbor direction i of a map position to the
// neighbor's tile coordinate, tile index, and the local offset at
// which to sample the neighbor's tile content. Neighbors outside the
// grid are excluded (ok == false); they contribute nothing.
func (m *Map) neighborAt(pos MapPosition, i int) (nx, ny int, index uint32, offset Point, ok bool) {
	d := neighborOffsets[i]
	nx = pos.TileX + d[0]
	ny = pos.TileY + d[1]
	if !m.tiles.InBounds(nx, ny) {
		return 0, 0, 0, Point{}, false
	}
	return nx, ny, m.tiles.AtUnchecked(nx, ny), pos.Offset.Add(m.neighborDeltas[i]), true
}

// neighborSample is one candidate overhang contribution collected for
// dominance ordering.
type neighborSample struct {
	index  uint32
	nx, ny int
	offset Point
}

// compositeDominance folds the home tile with every 8-neighbor whose
// index is strictly greater, in ascending index order, so higher
// indices always end up on top. Neighbors further than maxLevels
// above the home index, or at or beyond the atlas tile count, are
// skipped. Equal neighbor indices composite in the fixed enumeration
// order.
func (m *Map) compositeDominance(pos MapPosition, home uint32, animation float64) RGBA {
	total := uint32(m.nTilesX * m.nTilesY)

	var candidates [8]neighborSample
	n := 0
	for i := range neighborOffsets {
		nx, ny, idx, off, ok := m.neighborAt(pos, i)
		if !ok {
			continue
		}
		if idx <= home || idx-home > m.maxLevels || idx >= total {
			continue
		}
		candidates[n] = neighborSample{index: idx, nx: nx, ny: ny, offset: off}
		n++
	}

	// Stable insertion sort over at most 8 elements; preserves the
	// enumeration order for equal indices.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && candidates[j].index < candidates[j-1].index; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	c := m.sampler.SampleTile(home, pos.TileX, pos.TileY, pos.Offset, animation)
	for i := 0; i < n; i++ {
		s := candidates[i]
		c = Over(c, m.sampler.SampleTile(s.index, s.nx, s.ny, s.offset, animation))
	}
	return c
}

// compositePerspective folds underhang neighbors, then the home tile,
// then overhang neighbors, each set in the fixed enumeration order.
// The direction sets are static per map; the padding bleed limit in
// the tile sampler confines each neighbor's contribution to its
// allotted overhang region.
func (m *Map) compositePerspective(pos MapPosition, home uint32, animation float64) RGBA {
	c := Transparent
	for _, i := range m.underhang {
		if nx, ny, idx, off, ok := m.neighborAt(pos, i); ok {
			c = Over(c, m.sampler.SampleTile(idx, nx, ny, off, animation))
		}
	}
	c = Over(c, m.sampler.SampleTile(home, pos.TileX, pos.TileY, pos.Offset, animation))
	for _, i := range m.overhangDirs {
		if nx, ny, idx, off, ok := m.neighborAt(pos, i); ok {
			c = Over(c, m.sampler.SampleTile(idx, nx, ny, off, animation))
		}
	}
	return c
}
