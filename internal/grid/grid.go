// Package grid provides value-style operations over rectangular 2D grids.
// Grids are row-major: g[i][j] is row i, column j. Every operation returns a
// new grid and leaves its inputs untouched.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular, row-major 2D collection of cells.
// All rows have the same length; grids are never jagged.
type Grid[T any] [][]T

// Blank creates a grid of height rows, each holding width copies of filler.
// Every row is allocated independently so rows never alias each other.
func Blank[T any](width, height int, filler T) Grid[T] {
	g := make(Grid[T], height)
	for i := range g {
		row := make([]T, width)
		for j := range row {
			row[j] = filler
		}
		g[i] = row
	}
	return g
}

// Zero creates a grid filled with the zero value of T.
func Zero[T any](width, height int) Grid[T] {
	g := make(Grid[T], height)
	for i := range g {
		g[i] = make([]T, width)
	}
	return g
}

// FromRows copies the given rows into a new grid.
// Returns an error if the rows are jagged.
func FromRows[T any](rows [][]T) (Grid[T], error) {
	g := make(Grid[T], len(rows))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("grid: row %d has %d cells, expected %d", i, len(row), len(rows[0]))
		}
		g[i] = append([]T(nil), row...)
	}
	return g, nil
}

// Height returns the number of rows.
func (g Grid[T]) Height() int {
	return len(g)
}

// Width returns the number of columns.
// A grid without rows has no width; Width reports 0 for it, use Dims to
// tell the two cases apart.
func (g Grid[T]) Width() int {
	w, _ := g.Dims()
	return w
}

// Dims returns the width of the grid and whether it is defined.
// The width of a grid without rows is undefined.
func (g Grid[T]) Dims() (width int, ok bool) {
	if len(g) == 0 {
		return 0, false
	}
	return len(g[0]), true
}

// InBounds reports whether (i, j) addresses a cell of the grid.
func (g Grid[T]) InBounds(i, j int) bool {
	return i >= 0 && i < len(g) && j >= 0 && j < len(g[i])
}

// At returns the cell at (i, j) and whether it exists.
func (g Grid[T]) At(i, j int) (T, bool) {
	if !g.InBounds(i, j) {
		var zero T
		return zero, false
	}
	return g[i][j], true
}

// Clone returns a deep copy of the grid.
func (g Grid[T]) Clone() Grid[T] {
	if g == nil {
		return nil
	}
	out := make(Grid[T], len(g))
	for i, row := range g {
		out[i] = append([]T(nil), row...)
	}
	return out
}

// String renders the grid one row per line, cells separated by spaces.
func (g Grid[T]) String() string {
	var sb strings.Builder
	for i, row := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, cell)
		}
	}
	return sb.String()
}

// Equal reports whether two grids have the same shape and cells.
func Equal[T comparable](a, b Grid[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// ForEach calls fn for every cell in row-major order.
func ForEach[T any](g Grid[T], fn func(cell T, i, j int)) {
	for i, row := range g {
		for j, cell := range row {
			fn(cell, i, j)
		}
	}
}

// Map returns a grid of the same shape with fn applied to every cell.
func Map[T, U any](g Grid[T], fn func(cell T, i, j int) U) Grid[U] {
	out := make(Grid[U], len(g))
	for i, row := range g {
		out[i] = make([]U, len(row))
		for j, cell := range row {
			out[i][j] = fn(cell, i, j)
		}
	}
	return out
}

// FindIndex returns the indices of the first cell, in row-major order,
// satisfying pred.
func FindIndex[T any](g Grid[T], pred func(cell T, i, j int) bool) (i, j int, ok bool) {
	for i, row := range g {
		for j, cell := range row {
			if pred(cell, i, j) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Mirror reverses every row, flipping the grid horizontally.
func Mirror[T any](g Grid[T]) Grid[T] {
	return Map(g, func(_ T, i, j int) T {
		return g[i][len(g[i])-1-j]
	})
}
