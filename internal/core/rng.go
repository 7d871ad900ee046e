package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillRect sets each cell of rect alive with probability density. Cells that
// lose the draw keep their current state.
func FillRect(r *RNG, g *Grid, rect Rect, density float64) int {
	added := 0
	for row := rect.MinRow; row <= rect.MaxRow; row++ {
		for col := rect.MinCol; col <= rect.MaxCol; col++ {
			if !r.Chance(density) {
				continue
			}
			c := Cell{Col: col, Row: row}
			if !g.IsAlive(c) {
				added++
			}
			g.Set(c, true)
		}
	}
	return added
}
