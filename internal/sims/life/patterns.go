package life

import "lifecanvas/internal/core"

// Glider moves one cell down and right every four generations.
//
//	.#.
//	..#
//	###
var Glider = []core.Cell{{Col: 1, Row: 0}, {Col: 2, Row: 1}, {Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2}}

// Blinker is a period-two oscillator, vertical phase.
var Blinker = []core.Cell{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}}

// Block is a still life.
var Block = []core.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}}

// Stamp sets every cell of pattern alive, translated so that the pattern's
// origin lands on at.
func Stamp(g *core.Grid, pattern []core.Cell, at core.Cell) {
	for _, c := range pattern {
		g.Set(at.Add(c.Col, c.Row), true)
	}
}
