package view

import (
	"time"

	"lifecanvas/internal/core"
)

// BlinkInterval is how often the cursor toggles visibility.
const BlinkInterval = 500 * time.Millisecond

// Cursor is the keyboard editing position. Visibility blinks on its own
// interval, independent of the simulation tick.
type Cursor struct {
	Pos     core.Cell
	Visible bool

	blink *core.Interval
}

// NewCursor returns a visible cursor at the origin blinking every period.
func NewCursor(period time.Duration) *Cursor {
	return &Cursor{Visible: true, blink: core.NewInterval(period)}
}

// Touch makes the cursor visible and restarts the blink interval. Call it on
// every user action that concerns the cursor.
func (c *Cursor) Touch() {
	c.Visible = true
	c.blink.Restart()
}

// MoveTo places the cursor on cell.
func (c *Cursor) MoveTo(cell core.Cell) {
	c.Pos = cell
	c.Touch()
}

// Move shifts the cursor by (dc, dr) cells.
func (c *Cursor) Move(dc, dr int) {
	c.MoveTo(c.Pos.Add(dc, dr))
}

// Advance feeds elapsed time to the blink interval, toggling visibility once
// per elapsed period.
func (c *Cursor) Advance(dt time.Duration) {
	if c.blink.Advance(dt)%2 == 1 {
		c.Visible = !c.Visible
	}
}
