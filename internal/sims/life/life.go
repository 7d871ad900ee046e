package life

import (
	"lifecanvas/internal/core"

	"github.com/golang/glog"
)

// Next computes the generation that follows g under rule. Only cells within
// one step of a live cell can change, so the candidate set is the live cells
// plus their neighbors. g is read, never written; the result is a new grid.
func Next(g *core.Grid, rule Rule) *core.Grid {
	candidates := make(map[core.Cell]struct{}, g.Len()*9)
	g.Each(func(c core.Cell) {
		candidates[c] = struct{}{}
		for _, n := range core.Neighbors(c) {
			candidates[n] = struct{}{}
		}
	})

	next := core.NewGrid()
	for c := range candidates {
		if rule.Alive(g.IsAlive(c), g.CountLiveNeighbors(c)) {
			next.Set(c, true)
		}
	}
	return next
}

// World implements an unbounded life-like automaton over a sparse grid.
type World struct {
	name       string
	rule       Rule
	grid       *core.Grid
	generation int
}

// New returns a World running the provided rule on an empty grid.
func New(name string, rule Rule) *World {
	return &World{name: name, rule: rule, grid: core.NewGrid()}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Rule returns the active birth/survival rule.
func (w *World) Rule() Rule { return w.rule }

// Grid exposes the live-cell set. Callers may mutate it between steps.
func (w *World) Grid() *core.Grid { return w.grid }

// Generation returns the number of steps since the last reset or load.
func (w *World) Generation() int { return w.generation }

// Population returns the number of live cells.
func (w *World) Population() int { return w.grid.Len() }

// Reset clears the board and places a glider at the origin. The seed is
// ignored; the starting layout is always the same.
func (w *World) Reset(seed int64) {
	w.grid = core.NewGrid()
	Stamp(w.grid, Glider, core.Cell{})
	w.generation = 0
}

// Clear kills every cell and restarts the generation count.
func (w *World) Clear() {
	w.grid.Clear()
	w.generation = 0
}

// SetCells replaces the board with the provided cells.
func (w *World) SetCells(cells []core.Cell) {
	w.grid = core.NewGrid(cells...)
	w.generation = 0
}

// Randomize sets cells of rect alive with probability density, drawing from
// an RNG seeded with seed. Existing cells are kept. It returns the number of
// cells that were born.
func (w *World) Randomize(rect core.Rect, density float64, seed int64) int {
	return core.FillRect(core.NewRNG(seed), w.grid, rect, density)
}

// Step advances the simulation by one generation.
func (w *World) Step() {
	w.grid = Next(w.grid, w.rule)
	w.generation++
	if glog.V(2) {
		glog.Infof("%s: generation %d population %d", w.name, w.generation, w.grid.Len())
	}
}

// Parameters describes the world for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.StringParam("sim", "Sim", w.name),
				core.StringParam("rule", "Rule", w.rule.String()),
				core.IntParam("generation", "Generation", w.generation),
				core.IntParam("population", "Population", w.grid.Len()),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New("life", c.Rule)
	})
	core.Register("highlife", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		if _, ok := cfg["rule"]; !ok {
			c.Rule = HighLife
		}
		return New("highlife", c.Rule)
	})
}
