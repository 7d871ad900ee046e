package control

import (
	"testing"
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/view"
)

type fixedGrid struct{ g *core.Grid }

func (f fixedGrid) Grid() *core.Grid { return f.g }

func newController() (*Controller, *core.Grid) {
	g := core.NewGrid()
	c := New(fixedGrid{g}, view.BlinkInterval)
	c.Camera.EnsureCentered(800, 600)
	return c, g
}

func TestPanGesture(t *testing.T) {
	c, _ := newController()

	c.MovePointer(10, 10)
	if c.Camera.OffsetX != 400 || c.Camera.OffsetY != 300 {
		t.Fatal("pointer motion while idle moved the camera")
	}

	c.BeginPan(100, 100)
	if c.State() != Panning {
		t.Fatalf("state=%v, expected panning", c.State())
	}
	c.MovePointer(110, 95)
	c.MovePointer(130, 90)
	if c.Camera.OffsetX != 430 || c.Camera.OffsetY != 290 {
		t.Fatalf("offset=(%v,%v), expected (430,290)", c.Camera.OffsetX, c.Camera.OffsetY)
	}

	c.EndPan()
	if c.State() != Idle {
		t.Fatalf("state=%v after EndPan", c.State())
	}
	c.MovePointer(500, 500)
	if c.Camera.OffsetX != 430 || c.Camera.OffsetY != 290 {
		t.Fatal("pointer motion after pan end moved the camera")
	}
}

func TestSelectKeepsPanState(t *testing.T) {
	c, _ := newController()
	c.BeginPan(0, 0)
	c.Select(415, 285)
	if c.State() != Panning {
		t.Fatal("select ended the pan gesture")
	}
	if c.Cursor.Pos != (core.Cell{Col: 1, Row: -2}) {
		t.Fatalf("cursor=%v, expected (1,-2)", c.Cursor.Pos)
	}
}

func TestKeyboardEditing(t *testing.T) {
	c, g := newController()

	c.MoveCursor(Right)
	c.MoveCursor(Right)
	c.MoveCursor(Down)
	c.MoveCursor(Up)
	c.MoveCursor(Up)
	c.MoveCursor(Left)
	want := core.Cell{Col: 1, Row: -1}
	if c.Cursor.Pos != want {
		t.Fatalf("cursor=%v, expected %v", c.Cursor.Pos, want)
	}

	c.Confirm()
	if !g.IsAlive(want) || g.Len() != 1 {
		t.Fatalf("confirm did not toggle %v on (len=%d)", want, g.Len())
	}
	c.Confirm()
	if g.IsAlive(want) {
		t.Fatalf("second confirm did not toggle %v off", want)
	}
}

func TestCursorInputRestartsBlink(t *testing.T) {
	c, _ := newController()
	c.Tick(view.BlinkInterval)
	if c.Cursor.Visible {
		t.Fatal("cursor should blink off after one interval")
	}

	inputs := map[string]func(){
		"select":  func() { c.Select(10, 10) },
		"move":    func() { c.MoveCursor(Left) },
		"confirm": c.Confirm,
	}
	for name, input := range inputs {
		c.Tick(view.BlinkInterval)
		c.Tick(400 * time.Millisecond)
		input()
		if !c.Cursor.Visible {
			t.Fatalf("%s did not show the cursor", name)
		}
		c.Tick(400 * time.Millisecond)
		if !c.Cursor.Visible {
			t.Fatalf("%s did not restart the blink interval", name)
		}
	}
}

func TestWheelZoomsAboutPointer(t *testing.T) {
	c, _ := newController()
	before := c.Camera.ScreenToWorld(620, 130)

	c.Wheel(620, 130, 1)
	if c.Camera.Zoom <= view.DefaultZoom {
		t.Fatalf("wheel up did not zoom in: %v", c.Camera.Zoom)
	}
	if got := c.Camera.ScreenToWorld(620, 130); got != before {
		t.Fatalf("cell under pointer moved from %v to %v", before, got)
	}

	zoom := c.Camera.Zoom
	c.Wheel(620, 130, 0)
	if c.Camera.Zoom != zoom {
		t.Fatal("zero wheel delta changed zoom")
	}
	c.Wheel(620, 130, -2)
	if c.Camera.Zoom >= zoom {
		t.Fatalf("wheel down did not zoom out: %v", c.Camera.Zoom)
	}
}
