// Package life implements Conway's Game of Life on a bounded grid.
// Cells beyond the border count as dead; the board does not wrap.
package life

import (
	"math/rand"

	"github.com/vovakirdan/gridplay/internal/grid"
)

// LiveOrDie returns the next state of a cell: 1 if it has exactly three
// live neighbours, or is alive with two; 0 otherwise.
func LiveOrDie(alive, neighbours int) int {
	if neighbours == 3 || (alive != 0 && neighbours == 2) {
		return 1
	}
	return 0
}

// Tick computes the next generation.
func Tick(g grid.Grid[int]) grid.Grid[int] {
	return grid.Map(g, func(cell int, i, j int) int {
		return LiveOrDie(cell, grid.CountNeighbourValues(g, i, j))
	})
}

// Random creates a width x height board where each cell starts alive with
// the given probability.
func Random(rng *rand.Rand, width, height int, density float64) grid.Grid[int] {
	g := grid.Zero[int](width, height)
	for i := range g {
		for j := range g[i] {
			if rng.Float64() < density {
				g[i][j] = 1
			}
		}
	}
	return g
}

// Population returns the number of live cells.
func Population(g grid.Grid[int]) int {
	return grid.Sum(g)
}
