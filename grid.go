package tilemap

// IndexGrid is a randomly-addressable grid of unsigned tile indices,
// stored row-major with x fastest. It describes which atlas tile is
// drawn at each map position.
//
// The grid is owned by the host. During one evaluation pass the core
// treats it as a read-only snapshot; mutate it only between passes
// (single writer, frame-boundary synchronization).
type IndexGrid struct {
	width  int
	height int
	data   []uint32
}

// NewIndexGrid creates a zero-filled grid with the given dimensions.
func NewIndexGrid(width, height int) *IndexGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &IndexGrid{
		width:  width,
		height: height,
		data:   make([]uint32, width*height),
	}
}

// IndexGridFrom wraps an existing row-major, x-fastest index slice.
// The slice is not copied; it must have length width*height.
// Returns nil if the length does not match.
func IndexGridFrom(width, height int, data []uint32) *IndexGrid {
	if width < 0 || height < 0 || len(data) != width*height {
		return nil
	}
	return &IndexGrid{width: width, height: height, data: data}
}

// Width returns the grid width in tiles.
func (g *IndexGrid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *IndexGrid) Height() int { return g.height }

// At returns the tile index at (x, y). Coordinates outside the grid
// return the sentinel index 0, so neighbor probes never need their own
// bounds checks.
func (g *IndexGrid) At(x, y int) uint32 {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.data[y*g.width+x]
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *IndexGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// AtUnchecked returns the tile index at (x, y) without bounds checks.
// The caller must guarantee (x, y) is inside the grid; it is used for
// the home tile of a query, which by construction lies on the rendered
// surface.
func (g *IndexGrid) AtUnchecked(x, y int) uint32 {
	return g.data[y*g.width+x]
}

// Set stores a tile index at (x, y). Coordinates outside the grid are
// ignored.
func (g *IndexGrid) Set(x, y int, v uint32) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.data[y*g.width+x] = v
}

// Fill sets every cell to the given index.
func (g *IndexGrid) Fill(v uint32) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Data returns the underlying row-major slice. Mutations through the
// slice follow the same between-passes rule as Set.
func (g *IndexGrid) Data() []uint32 {
	return g.data
}

// MaxIndex returns the largest tile index currently stored.
func (g *IndexGrid) MaxIndex() uint32 {
	var m uint32
	for _, v := range g.data {
		if v > m {
			m = v
		}
	}
	return m
}
