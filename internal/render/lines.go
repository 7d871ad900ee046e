package render

import (
	"lifecanvas/internal/core"
	"lifecanvas/internal/view"
)

// GridLineMinZoom is the zoom above which cell borders are drawn.
const GridLineMinZoom = 4.0

// GridLines returns the screen x positions of vertical and y positions of
// horizontal cell borders inside a w×h viewport. Nothing is returned when
// cells are too small for borders to be legible.
func GridLines(cam *view.Camera, w, h int) (xs, ys []float64) {
	if cam.Zoom <= GridLineMinZoom {
		return nil, nil
	}
	r := cam.VisibleRange(w, h)
	if r.Empty() {
		return nil, nil
	}
	for col := r.MinCol; col <= r.MaxCol+1; col++ {
		x, _ := cam.WorldToScreen(core.Cell{Col: col})
		if x >= 0 && x < float64(w) {
			xs = append(xs, x)
		}
	}
	for row := r.MinRow; row <= r.MaxRow+1; row++ {
		_, y := cam.WorldToScreen(core.Cell{Row: row})
		if y >= 0 && y < float64(h) {
			ys = append(ys, y)
		}
	}
	return xs, ys
}

// Visible returns the live cells that intersect a w×h viewport.
func Visible(g *core.Grid, cam *view.Camera, w, h int) []core.Cell {
	return g.Within(cam.VisibleRange(w, h))
}
