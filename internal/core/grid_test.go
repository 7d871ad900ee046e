package core

import (
	"slices"
	"testing"
)

func TestToggleFlipsSingleCell(t *testing.T) {
	g := NewGrid()
	c := Cell{Col: -4, Row: 7}

	g.Toggle(c)
	if !g.IsAlive(c) {
		t.Fatalf("cell %v should be alive after toggle", c)
	}
	if g.Len() != 1 {
		t.Fatalf("toggle affected %d cells, expected 1", g.Len())
	}
	for _, n := range Neighbors(c) {
		if g.IsAlive(n) {
			t.Fatalf("neighbor %v changed state", n)
		}
	}

	g.Toggle(c)
	if g.IsAlive(c) || g.Len() != 0 {
		t.Fatalf("second toggle should kill %v (len=%d)", c, g.Len())
	}
}

func TestCountLiveNeighbors(t *testing.T) {
	center := Cell{Col: 0, Row: 0}
	ring := Neighbors(center)
	full := append(ring[:], center)
	cases := []struct {
		name  string
		cells []Cell
		want  int
	}{
		{name: "empty", want: 0},
		{name: "self only", cells: []Cell{center}, want: 0},
		{name: "one orthogonal", cells: []Cell{{1, 0}}, want: 1},
		{name: "one diagonal", cells: []Cell{{-1, -1}}, want: 1},
		{name: "distance two ignored", cells: []Cell{{2, 0}, {0, -2}, {2, 2}}, want: 0},
		{name: "full ring plus self", cells: full, want: 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.cells...)
			if got := g.CountLiveNeighbors(center); got != tc.want {
				t.Fatalf("CountLiveNeighbors=%d, expected %d", got, tc.want)
			}
		})
	}
}

func TestClearIsIdempotent(t *testing.T) {
	g := NewGrid(Cell{1, 1}, Cell{2, 2})
	g.Clear()
	g.Clear()
	if g.Len() != 0 {
		t.Fatalf("grid still has %d cells", g.Len())
	}
	g.Set(Cell{3, 3}, true)
	if !g.IsAlive(Cell{3, 3}) {
		t.Fatal("grid must accept cells after Clear")
	}
}

func TestZeroGridIsUsable(t *testing.T) {
	var g Grid
	if g.IsAlive(Cell{}) {
		t.Fatal("zero grid reports a live cell")
	}
	g.Toggle(Cell{})
	if !g.IsAlive(Cell{}) {
		t.Fatal("zero grid did not record toggle")
	}
}

func TestWithinUsesInclusiveRange(t *testing.T) {
	g := NewGrid(Cell{0, 0}, Cell{5, 5}, Cell{-1, 0}, Cell{5, 6}, Cell{100, 100})
	r := Rect{MinCol: 0, MinRow: 0, MaxCol: 5, MaxRow: 5}

	got := g.Within(r)
	SortCells(got)
	want := []Cell{{0, 0}, {5, 5}}
	if !slices.Equal(got, want) {
		t.Fatalf("Within=%v, expected %v", got, want)
	}

	// A large range takes the population scan path.
	wide := Rect{MinCol: -1000, MinRow: -1000, MaxCol: 1000, MaxRow: 1000}
	if n := len(g.Within(wide)); n != 5 {
		t.Fatalf("Within(wide) returned %d cells, expected 5", n)
	}
	if got := g.Within(Rect{MinCol: 1, MaxCol: 0}); got != nil {
		t.Fatalf("empty rect returned %v", got)
	}
}

func TestCellsSortedAndBounds(t *testing.T) {
	g := NewGrid(Cell{3, 1}, Cell{-2, 1}, Cell{0, -5})
	want := []Cell{{0, -5}, {-2, 1}, {3, 1}}
	if got := g.Cells(); !slices.Equal(got, want) {
		t.Fatalf("Cells=%v, expected %v", got, want)
	}

	r, ok := g.Bounds()
	if !ok {
		t.Fatal("non-empty grid must report bounds")
	}
	if r != (Rect{MinCol: -2, MinRow: -5, MaxCol: 3, MaxRow: 1}) {
		t.Fatalf("unexpected bounds %+v", r)
	}
	if _, ok := NewGrid().Bounds(); ok {
		t.Fatal("empty grid must not report bounds")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(Cell{1, 2})
	c := g.Clone()
	c.Toggle(Cell{9, 9})
	if g.IsAlive(Cell{9, 9}) {
		t.Fatal("mutating clone leaked into original")
	}
	if g.Equal(c) {
		t.Fatal("grids with different cells compare equal")
	}
	c.Toggle(Cell{9, 9})
	if !g.Equal(c) {
		t.Fatal("grids with identical cells compare unequal")
	}
}
