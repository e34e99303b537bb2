// Command tilemapdemo demonstrates the tilemap sampling library.
//
// It builds a small procedural tile atlas, fills a map with a pattern,
// and renders it to PNG files in each projection and overhang mode.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/gogpu/tilemap"
)

const (
	tileW = 16
	tileH = 16
	nCols = 4
	nRows = 3
)

func main() {
	var (
		mapSize = flag.Int("mapsize", 48, "map size in tiles (square)")
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		workers = flag.Int("workers", 0, "render workers (0 = GOMAXPROCS)")
		seed    = flag.Int64("seed", 1, "map pattern seed")
		prefix  = flag.String("prefix", "tilemap", "output file prefix")
	)
	flag.Parse()

	atlas, err := buildAtlas()
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}

	r := tilemap.NewRenderer(*workers)
	defer r.Close()

	demos := []struct {
		name string
		opts []tilemap.Option
	}{
		{"flat", nil},
		{"dominance", []tilemap.Option{tilemap.WithDominanceOverhang(4)}},
		{"iso", []tilemap.Option{tilemap.WithProjection(tilemap.Axonometric)}},
		{"iso_perspective", []tilemap.Option{
			tilemap.WithProjection(tilemap.Axonometric),
			tilemap.WithPerspectiveOverhang(),
		}},
	}

	for _, demo := range demos {
		m, err := tilemap.NewMap(*mapSize, *mapSize, atlas, tilemap.Pt(tileW, tileH), demo.opts...)
		if err != nil {
			log.Fatalf("Failed to build %s map: %v", demo.name, err)
		}
		fillPattern(m.Tiles(), rand.New(rand.NewSource(*seed)))

		dst := tilemap.NewPixmap(*width, *height)
		r.Render(m, dst, tilemap.RenderOptions{
			View: tilemap.Translate(-float64(*width)/2, -float64(*height)/2),
		})

		out := *prefix + "_" + demo.name + ".png"
		if err := dst.SavePNG(out); err != nil {
			log.Fatalf("Failed to save %s: %v", out, err)
		}
		log.Printf("Rendered %s (%dx%d)", out, *width, *height)
	}
}

// buildAtlas draws a procedural atlas: nCols*nRows tiles, each a
// filled diamond over a darker square so the same atlas reads as flat
// squares in rectangular projection and as ground diamonds in
// axonometric projection. Higher tile indices get lighter colors, which
// makes dominance ordering visible.
func buildAtlas() (*tilemap.Atlas, error) {
	pm := tilemap.NewPixmap(tileW*nCols, tileH*nRows)

	for idx := 0; idx < nCols*nRows; idx++ {
		ox := (idx % nCols) * tileW
		oy := (idx / nCols) * tileH
		t := float64(idx) / float64(nCols*nRows-1)
		base := tilemap.RGB(0.15+0.7*t, 0.45, 0.7-0.5*t)

		for y := 0; y < tileH; y++ {
			for x := 0; x < tileW; x++ {
				// Diamond distance from tile center, in half-tiles.
				dx := (float64(x) + 0.5 - tileW/2) / (tileW / 2)
				dy := (float64(y) + 0.5 - tileH/2) / (tileH / 2)
				d := abs(dx) + abs(dy)

				c := base
				switch {
				case d <= 0.9:
					// Diamond interior.
				case d <= 1.0:
					c = base.Lerp(tilemap.Black, 0.5) // diamond rim
				default:
					c = base.Lerp(tilemap.Black, 0.75)
				}
				pm.SetPixel(ox+x, oy+y, c)
			}
		}
	}

	return tilemap.NewAtlas(pm.ToImage(), tilemap.FilterNearest)
}

// fillPattern fills the grid with mostly-low indices and scattered
// higher ones, so overhang modes have something to composite.
func fillPattern(g *tilemap.IndexGrid, rng *rand.Rand) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := uint32(rng.Intn(3))
			if rng.Intn(12) == 0 {
				v = uint32(3 + rng.Intn(nCols*nRows-3))
			}
			g.Set(x, y, v)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
