package core

import (
	"cmp"
	"slices"
)

// Cell identifies a grid position by column and row. The coordinate space is
// unbounded in both directions.
type Cell struct {
	Col int
	Row int
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell { return Cell{Col: c.Col + dc, Row: c.Row + dr} }

// Rect is an inclusive range of columns and rows.
type Rect struct {
	MinCol, MinRow int
	MaxCol, MaxRow int
}

// Contains reports whether c lies inside the range.
func (r Rect) Contains(c Cell) bool {
	return c.Col >= r.MinCol && c.Col <= r.MaxCol && c.Row >= r.MinRow && c.Row <= r.MaxRow
}

// Empty reports whether the range covers no cells.
func (r Rect) Empty() bool { return r.MaxCol < r.MinCol || r.MaxRow < r.MinRow }

// Area returns the number of cells covered by the range.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxCol - r.MinCol + 1) * (r.MaxRow - r.MinRow + 1)
}

// neighborOffsets lists the eight cells at Chebyshev distance one.
var neighborOffsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the eight cells surrounding c.
func Neighbors(c Cell) [8]Cell {
	var out [8]Cell
	for i, d := range neighborOffsets {
		out[i] = c.Add(d.Col, d.Row)
	}
	return out
}

// Grid stores the set of live cells of an unbounded board. A cell is alive
// exactly when it is a member of the set.
type Grid struct {
	live map[Cell]struct{}
}

// NewGrid returns a grid with the provided cells alive.
func NewGrid(cells ...Cell) *Grid {
	g := &Grid{live: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		g.live[c] = struct{}{}
	}
	return g
}

// IsAlive reports whether c is a live cell.
func (g *Grid) IsAlive(c Cell) bool {
	_, ok := g.live[c]
	return ok
}

// Set forces the state of a single cell.
func (g *Grid) Set(c Cell, alive bool) {
	if g.live == nil {
		g.live = make(map[Cell]struct{})
	}
	if alive {
		g.live[c] = struct{}{}
		return
	}
	delete(g.live, c)
}

// Toggle flips the state of a single cell.
func (g *Grid) Toggle(c Cell) { g.Set(c, !g.IsAlive(c)) }

// CountLiveNeighbors returns how many of the eight surrounding cells are
// alive. The cell itself is never counted.
func (g *Grid) CountLiveNeighbors(c Cell) int {
	n := 0
	for _, d := range neighborOffsets {
		if _, ok := g.live[c.Add(d.Col, d.Row)]; ok {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.live)
}

// Len returns the number of live cells.
func (g *Grid) Len() int { return len(g.live) }

// Each calls fn for every live cell in unspecified order.
func (g *Grid) Each(fn func(Cell)) {
	for c := range g.live {
		fn(c)
	}
}

// Cells returns the live cells sorted by row, then column.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.live))
	for c := range g.live {
		out = append(out, c)
	}
	SortCells(out)
	return out
}

// Within returns the live cells inside r. The cost is bounded by the smaller
// of the live population and the area of r.
func (g *Grid) Within(r Rect) []Cell {
	if r.Empty() {
		return nil
	}
	var out []Cell
	if r.Area() < len(g.live) {
		for row := r.MinRow; row <= r.MaxRow; row++ {
			for col := r.MinCol; col <= r.MaxCol; col++ {
				c := Cell{Col: col, Row: row}
				if _, ok := g.live[c]; ok {
					out = append(out, c)
				}
			}
		}
		return out
	}
	for c := range g.live {
		if r.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Bounds returns the smallest range containing every live cell. ok is false
// for an empty grid.
func (g *Grid) Bounds() (r Rect, ok bool) {
	for c := range g.live {
		if !ok {
			r = Rect{MinCol: c.Col, MinRow: c.Row, MaxCol: c.Col, MaxRow: c.Row}
			ok = true
			continue
		}
		r.MinCol = min(r.MinCol, c.Col)
		r.MaxCol = max(r.MaxCol, c.Col)
		r.MinRow = min(r.MinRow, c.Row)
		r.MaxRow = max(r.MaxRow, c.Row)
	}
	return r, ok
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{live: make(map[Cell]struct{}, len(g.live))}
	for c := range g.live {
		out.live[c] = struct{}{}
	}
	return out
}

// Equal reports whether both grids hold the same live cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Len() != other.Len() {
		return false
	}
	for c := range g.live {
		if !other.IsAlive(c) {
			return false
		}
	}
	return true
}

// SortCells orders cells by row, then column.
func SortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
}
