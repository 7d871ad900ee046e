// Package control turns pointer and keyboard input into grid and camera
// mutations.
package control

import (
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/view"
)

// State is the pointer gesture state.
type State int

const (
	// Idle means no gesture is in progress.
	Idle State = iota
	// Panning means the view follows pointer motion.
	Panning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	default:
		return "unknown"
	}
}

// Direction is a keyboard cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// delta returns the cell offset for d.
func (d Direction) delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// GridSource yields the grid edits should apply to. The simulation replaces
// its grid every generation, so the controller asks for it on each edit.
type GridSource interface {
	Grid() *core.Grid
}

// Controller owns the camera and cursor and routes input to them and to the
// grid.
type Controller struct {
	Camera *view.Camera
	Cursor *view.Cursor

	grids GridSource
	state State

	anchorX, anchorY float64
}

// New returns a controller editing the grid supplied by grids.
func New(grids GridSource, blink time.Duration) *Controller {
	return &Controller{
		Camera: view.NewCamera(),
		Cursor: view.NewCursor(blink),
		grids:  grids,
	}
}

// State returns the current gesture state.
func (c *Controller) State() State { return c.state }

// BeginPan starts a pan gesture anchored at (x, y).
func (c *Controller) BeginPan(x, y float64) {
	c.state = Panning
	c.anchorX, c.anchorY = x, y
}

// MovePointer applies the motion since the last sample to the camera while
// panning. Outside a pan it does nothing.
func (c *Controller) MovePointer(x, y float64) {
	if c.state != Panning {
		return
	}
	c.Camera.Pan(x-c.anchorX, y-c.anchorY)
	c.anchorX, c.anchorY = x, y
}

// EndPan finishes the pan gesture.
func (c *Controller) EndPan() {
	c.state = Idle
}

// Select moves the cursor to the cell under (x, y). The pan state is left
// untouched.
func (c *Controller) Select(x, y float64) {
	c.Cursor.MoveTo(c.Camera.ScreenToWorld(x, y))
}

// MoveCursor shifts the cursor by one cell.
func (c *Controller) MoveCursor(d Direction) {
	c.Cursor.Move(d.delta())
}

// Confirm toggles the cell under the cursor.
func (c *Controller) Confirm() {
	c.grids.Grid().Toggle(c.Cursor.Pos)
	c.Cursor.Touch()
}

// Wheel zooms about (x, y): in for positive dy, out otherwise. A zero dy is
// ignored.
func (c *Controller) Wheel(x, y, dy float64) {
	switch {
	case dy > 0:
		c.Camera.ZoomIn(x, y)
	case dy < 0:
		c.Camera.ZoomOut(x, y)
	}
}

// Tick advances the cursor blink.
func (c *Controller) Tick(dt time.Duration) {
	c.Cursor.Advance(dt)
}
