//go:build ebiten

package render

import (
	"lifecanvas/internal/core"
	"lifecanvas/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cursorStroke is the cursor outline width in pixels.
const cursorStroke = 2

// GridPainter draws the visible part of an unbounded grid through a camera.
type GridPainter struct {
	theme *Theme
}

// NewGridPainter returns a painter using theme, or DefaultTheme when nil.
func NewGridPainter(theme *Theme) *GridPainter {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &GridPainter{theme: theme}
}

// Theme returns the active colours.
func (gp *GridPainter) Theme() *Theme { return gp.theme }

// Draw renders grid lines, live cells and the cursor. Work is bounded by the
// number of visible cells.
func (gp *GridPainter) Draw(dst *ebiten.Image, g *core.Grid, cam *view.Camera, cursor *view.Cursor) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	dst.Fill(gp.theme.Background)

	xs, ys := GridLines(cam, w, h)
	for _, x := range xs {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(h), 1, gp.theme.GridLine, false)
	}
	for _, y := range ys {
		vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1, gp.theme.GridLine, false)
	}

	size := float32(cam.Zoom)
	for _, c := range Visible(g, cam, w, h) {
		x, y := cam.WorldToScreen(c)
		vector.DrawFilledRect(dst, float32(x), float32(y), size, size, gp.theme.CellColor(g.CountLiveNeighbors(c)), false)
	}

	if cursor != nil && cursor.Visible && cam.VisibleRange(w, h).Contains(cursor.Pos) {
		x, y := cam.WorldToScreen(cursor.Pos)
		vector.StrokeRect(dst, float32(x), float32(y), size, size, cursorStroke, gp.theme.Cursor, false)
	}
}
