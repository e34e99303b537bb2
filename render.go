package tilemap

import (
	"github.com/gogpu/tilemap/internal/parallel"
)

// Renderer evaluates whole map surfaces into a [Pixmap], one
// independent query per pixel, distributed over a worker pool. Queries
// never share mutable state, so the pass parallelizes without
// synchronization; the pool exists purely to spread the work.
//
// A Renderer can be reused across passes and maps. Close it when done.
type Renderer struct {
	pool *parallel.Pool
}

// NewRenderer creates a renderer with the given number of workers.
// Workers <= 0 uses GOMAXPROCS.
func NewRenderer(workers int) *Renderer {
	return &Renderer{pool: parallel.NewPool(workers)}
}

// Close shuts down the renderer's worker pool. The renderer must not
// be used afterwards.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Workers returns the number of workers in the renderer's pool.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// RenderOptions configures one evaluation pass.
type RenderOptions struct {
	// View maps pixel coordinates (sampled at pixel centers) to world
	// coordinates. The zero value is treated as the identity, pixel
	// (0, 0) at world origin. A typical view centers the map:
	//
	//	view := tilemap.Translate(-w/2, -h/2)
	//
	// optionally composed with a scale for zoom.
	View Matrix

	// Sample carries the per-instance tint and animation state applied
	// to every query of the pass.
	Sample SampleOptions
}

// Render evaluates m for every pixel of dst and stores the resulting
// colors. The map, its index grid, and its atlas are treated as a
// read-only snapshot for the duration of the pass; the host must not
// mutate them until Render returns.
func (r *Renderer) Render(m *Map, dst *Pixmap, opts RenderOptions) {
	view := opts.View
	if (view == Matrix{}) {
		view = Identity()
	}

	w := dst.Width()
	h := dst.Height()
	if w == 0 || h == 0 {
		return
	}

	// One band of rows per work item: small enough to balance across
	// workers, large enough to amortize scheduling.
	bandHeight := h / (r.pool.Workers() * 4)
	if bandHeight < 1 {
		bandHeight = 1
	}

	Logger().Debug("tilemap: render pass",
		"size", [2]int{w, h}, "band_height", bandHeight, "workers", r.pool.Workers())

	var work []func()
	for y0 := 0; y0 < h; y0 += bandHeight {
		y1 := y0 + bandHeight
		if y1 > h {
			y1 = h
		}
		band := func(y0, y1 int) func() {
			return func() {
				for y := y0; y < y1; y++ {
					for x := 0; x < w; x++ {
						world := view.TransformPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
						dst.SetPixel(x, y, m.Sample(world, opts.Sample))
					}
				}
			}
		}(y0, y1)
		work = append(work, band)
	}

	r.pool.ExecuteAll(work)
}
