package core

import "sort"

// Sim defines the contract a sparse cellular automaton exposes to the app.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
	Generation() int
	Grid() *Grid
	SetCells(cells []Cell)
	Clear()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered simulation names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
