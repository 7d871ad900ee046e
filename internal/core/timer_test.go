package core

import (
	"testing"
	"time"
)

func TestIntervalAdvanceCountsPeriods(t *testing.T) {
	iv := NewInterval(100 * time.Millisecond)
	if n := iv.Advance(50 * time.Millisecond); n != 0 {
		t.Fatalf("fired %d times before a full period", n)
	}
	if n := iv.Advance(60 * time.Millisecond); n != 1 {
		t.Fatalf("fired %d times after 110ms, expected 1", n)
	}
	if n := iv.Advance(290 * time.Millisecond); n != 3 {
		t.Fatalf("fired %d times after 400ms total, expected 3 more", n)
	}
}

func TestIntervalRestartDropsAccumulatedTime(t *testing.T) {
	iv := NewInterval(500 * time.Millisecond)
	iv.Advance(400 * time.Millisecond)
	iv.Restart()
	if n := iv.Advance(400 * time.Millisecond); n != 0 {
		t.Fatalf("restarted interval fired after 400ms")
	}
	if n := iv.Advance(100 * time.Millisecond); n != 1 {
		t.Fatalf("restarted interval did not fire at 500ms")
	}
}

func TestIntervalDefaults(t *testing.T) {
	if p := NewInterval(0).Period(); p != time.Second {
		t.Fatalf("zero period defaulted to %v", p)
	}
	iv := NewInterval(time.Second)
	if n := iv.Advance(-time.Second); n != 0 {
		t.Fatalf("negative delta fired %d times", n)
	}
}

func TestFillRectIsDeterministic(t *testing.T) {
	rect := Rect{MinCol: -5, MinRow: -5, MaxCol: 5, MaxRow: 5}
	a, b := NewGrid(), NewGrid()
	na := FillRect(NewRNG(7), a, rect, 0.3)
	nb := FillRect(NewRNG(7), b, rect, 0.3)
	if na != nb || !a.Equal(b) {
		t.Fatal("same seed produced different fills")
	}
	if na == 0 || na == rect.Area() {
		t.Fatalf("density 0.3 filled %d of %d cells", na, rect.Area())
	}
	a.Each(func(c Cell) {
		if !rect.Contains(c) {
			t.Fatalf("cell %v outside fill rect", c)
		}
	})
	if n := FillRect(NewRNG(1), NewGrid(), rect, 0); n != 0 {
		t.Fatalf("zero density added %d cells", n)
	}
}
