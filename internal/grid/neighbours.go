package grid

import "golang.org/x/exp/constraints"

// Number is the set of cell types that support arithmetic combination.
type Number interface {
	constraints.Integer | constraints.Float
}

// ForEveryNeighbour visits the up to eight Moore neighbours of (i, j).
// Positions outside the grid are skipped; there is no wraparound.
// A neighbour is visited whenever it exists, whatever its value, so a zero
// cell is still a neighbour.
func ForEveryNeighbour[T any](g Grid[T], i, j int, fn func(cell T, ni, nj int)) {
	for ni := i - 1; ni <= i+1; ni++ {
		for nj := j - 1; nj <= j+1; nj++ {
			if ni == i && nj == j {
				continue
			}
			cell, ok := g.At(ni, nj)
			if !ok {
				continue
			}
			fn(cell, ni, nj)
		}
	}
}

// Neighbours returns the existing Moore neighbours of (i, j) in row-major order.
func Neighbours[T any](g Grid[T], i, j int) []T {
	out := make([]T, 0, 8)
	ForEveryNeighbour(g, i, j, func(cell T, _, _ int) {
		out = append(out, cell)
	})
	return out
}

// CountNeighbourValues sums the values of the Moore neighbours of (i, j).
// Returns 0 when no neighbour is in range.
func CountNeighbourValues[T Number](g Grid[T], i, j int) T {
	var sum T
	ForEveryNeighbour(g, i, j, func(cell T, _, _ int) {
		sum += cell
	})
	return sum
}
