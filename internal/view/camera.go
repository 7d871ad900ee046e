package view

import (
	"math"

	"lifecanvas/internal/core"
)

// Zoom limits and defaults. Zoom is the side of one cell in screen pixels.
const (
	MinZoom     = 1.0
	MaxZoom     = 100.0
	DefaultZoom = 10.0
	ZoomStep    = 1.2
)

// snapULPs bounds the rounding error of a screen/zoom ratio, in units of the
// machine epsilon scaled by the operands it was computed from.
const snapULPs = 8

// Camera maps world cells to screen pixels: a cell's top-left corner sits at
// (col*Zoom + OffsetX, row*Zoom + OffsetY).
type Camera struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64

	centered bool
}

// NewCamera returns a camera at the default zoom with a zero offset. The
// offset is moved to the screen centre by the first EnsureCentered call.
func NewCamera() *Camera {
	return &Camera{Zoom: DefaultZoom}
}

// ClampZoom limits z to [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return DefaultZoom
	}
	return math.Max(MinZoom, math.Min(z, MaxZoom))
}

// EnsureCentered places the world origin at the centre of a w×h screen the
// first time it is called. Later calls are no-ops.
func (c *Camera) EnsureCentered(w, h int) {
	if c.centered || w <= 0 || h <= 0 {
		return
	}
	c.Center(w, h)
}

// Center places the world origin at the centre of a w×h screen.
func (c *Camera) Center(w, h int) {
	c.OffsetX = float64(w) / 2
	c.OffsetY = float64(h) / 2
	c.centered = true
}

// Reset restores the default zoom and centres the origin.
func (c *Camera) Reset(w, h int) {
	c.Zoom = DefaultZoom
	c.Center(w, h)
}

// WorldToScreen returns the top-left screen corner of cell.
func (c *Camera) WorldToScreen(cell core.Cell) (x, y float64) {
	return float64(cell.Col)*c.Zoom + c.OffsetX, float64(cell.Row)*c.Zoom + c.OffsetY
}

// ScreenToWorld returns the cell under the screen point (x, y).
func (c *Camera) ScreenToWorld(x, y float64) core.Cell {
	return core.Cell{
		Col: floorCell(x, c.OffsetX, c.Zoom),
		Row: floorCell(y, c.OffsetY, c.Zoom),
	}
}

// WorldPoint returns the fractional world coordinates under (x, y).
func (c *Camera) WorldPoint(x, y float64) (wx, wy float64) {
	return (x - c.OffsetX) / c.Zoom, (y - c.OffsetY) / c.Zoom
}

// VisibleRange returns the inclusive range of cells whose squares intersect
// a w×h viewport anchored at the screen origin.
func (c *Camera) VisibleRange(w, h int) core.Rect {
	if w <= 0 || h <= 0 {
		return core.Rect{MinCol: 0, MinRow: 0, MaxCol: -1, MaxRow: -1}
	}
	// The right and bottom edges are exclusive: a cell starting exactly on
	// them is not visible.
	return core.Rect{
		MinCol: int(math.Floor(-c.OffsetX / c.Zoom)),
		MinRow: int(math.Floor(-c.OffsetY / c.Zoom)),
		MaxCol: int(math.Ceil((float64(w)-c.OffsetX)/c.Zoom)) - 1,
		MaxRow: int(math.Ceil((float64(h)-c.OffsetY)/c.Zoom)) - 1,
	}
}

// Pan moves the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// ZoomIn magnifies by ZoomStep keeping the world point under (px, py) fixed.
func (c *Camera) ZoomIn(px, py float64) { *c = ZoomAt(*c, px, py, ZoomStep) }

// ZoomOut shrinks by ZoomStep keeping the world point under (px, py) fixed.
func (c *Camera) ZoomOut(px, py float64) { *c = ZoomAt(*c, px, py, 1/ZoomStep) }

// ZoomAt returns cam scaled by factor about the screen point (px, py). The
// world point under (px, py) stays under it afterwards; the new zoom is
// clamped to [MinZoom, MaxZoom].
func ZoomAt(cam Camera, px, py, factor float64) Camera {
	wx, wy := cam.WorldPoint(px, py)
	cam.Zoom = ClampZoom(cam.Zoom * factor)
	cam.OffsetX = px - wx*cam.Zoom
	cam.OffsetY = py - wy*cam.Zoom
	return cam
}

// floorCell is floor((screen-offset)/zoom). A ratio within rounding error of
// an integer snaps to it, so a cell's own corner maps back to that cell. The
// error bound follows the operands, not the ratio, which keeps the snap band
// a few ULPs wide at any distance from the origin.
func floorCell(screen, offset, zoom float64) int {
	v := (screen - offset) / zoom
	r := math.Round(v)
	tol := snapULPs * epsilon * ((math.Abs(screen)+math.Abs(offset))/zoom + math.Abs(v))
	if math.Abs(v-r) <= tol {
		return int(r)
	}
	return int(math.Floor(v))
}

const epsilon = 0x1p-52
