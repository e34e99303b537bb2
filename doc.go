// Package tilemap resolves points on a tilemap surface to colors.
//
// A [Map] combines grid geometry, a tile atlas, a projection, and a
// tile-index grid. For any world-space position it answers "which atlas
// tile is visible here, and what color is that texel", compositing
// overlapping neighbor tiles to simulate depth:
//
//   - Dominance overhang: tiles with a higher atlas index render on top
//     of tiles with a lower index, in all directions.
//   - Perspective overhang: fixed, projection-dependent neighbor
//     directions render behind or in front of the current tile,
//     giving tall tiles a pseudo-3D look.
//
// Every query is a stateless pure evaluation; the [Renderer] runs one
// query per pixel across a worker pool. Hosts may mutate the tile-index
// grid only between render passes.
//
// Basic usage:
//
//	atlas, err := tilemap.LoadAtlas("tiles.png", tilemap.FilterNearest)
//	if err != nil {
//		log.Fatal(err)
//	}
//	m, err := tilemap.NewMap(64, 64, atlas, tilemap.Pt(16, 16),
//		tilemap.WithProjection(tilemap.Axonometric),
//		tilemap.WithPerspectiveOverhang(),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	m.Tiles().Set(3, 4, 7)
//	c := m.Sample(tilemap.Pt(12.5, -3.0), tilemap.SampleOptions{})
//
// By default tilemap produces no log output. Call [SetLogger] to enable
// structured logging via log/slog.
package tilemap
