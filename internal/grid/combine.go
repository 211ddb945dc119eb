package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a superimposed grid would not fit.
var ErrOutOfBounds = errors.New("grid: superimposed grid would be out of bounds")

// combine walks the union of both grids' extents. Cells a grid does not
// cover are reported as missing.
func combine[T, U any](a, b Grid[T], fn func(av T, aok bool, bv T, bok bool) U) Grid[U] {
	height := max(a.Height(), b.Height())
	width := max(a.Width(), b.Width())

	out := make(Grid[U], height)
	for i := range height {
		out[i] = make([]U, width)
		for j := range width {
			av, aok := a.At(i, j)
			bv, bok := b.At(i, j)
			out[i][j] = fn(av, aok, bv, bok)
		}
	}
	return out
}

// Union overlays two grids. Each result cell is the first non-zero value of
// the a cell, the b cell, and fill. The result spans the larger height and
// the larger width of the two inputs.
func Union[T comparable](a, b Grid[T], fill T) Grid[T] {
	var zero T
	return combine(a, b, func(av T, aok bool, bv T, bok bool) T {
		if aok && av != zero {
			return av
		}
		if bok && bv != zero {
			return bv
		}
		return fill
	})
}

// Add sums two grids cell by cell. Missing cells count as 0.
func Add[T Number](a, b Grid[T]) Grid[T] {
	return combine(a, b, func(av T, _ bool, bv T, _ bool) T {
		return av + bv
	})
}

// Intersection is 1 where both grids hold a non-zero cell and 0 elsewhere.
// Missing cells count as 0. The result is sized like Union, not shrunk to
// the overlapping extent.
func Intersection[T Number](a, b Grid[T]) Grid[T] {
	return combine(a, b, func(av T, _ bool, bv T, _ bool) T {
		if av != 0 && bv != 0 {
			return 1
		}
		return 0
	})
}

// SuperimposeOption configures Superimpose.
type SuperimposeOption func(*superimposeOptions)

type superimposeOptions struct {
	crop bool
}

// Crop silently drops inset cells that fall outside the main grid instead
// of failing.
func Crop() SuperimposeOption {
	return func(o *superimposeOptions) {
		o.crop = true
	}
}

// Superimpose places inset with its top-left corner at column x, row y of a
// blank canvas the size of main, then unions the canvas with main.
// Returns ErrOutOfBounds if any inset cell lands outside main, unless Crop
// is given.
func Superimpose[T comparable](main, inset Grid[T], x, y int, opts ...SuperimposeOption) (Grid[T], error) {
	var o superimposeOptions
	for _, opt := range opts {
		opt(&o)
	}

	canvas := Zero[T](main.Width(), main.Height())
	for i, row := range inset {
		for j, cell := range row {
			ti, tj := y+i, x+j
			if !canvas.InBounds(ti, tj) {
				if o.crop {
					continue
				}
				return nil, fmt.Errorf("%w: cell (%d,%d) of %dx%d inset at x=%d y=%d on %dx%d grid",
					ErrOutOfBounds, i, j, inset.Width(), inset.Height(), x, y, main.Width(), main.Height())
			}
			canvas[ti][tj] = cell
		}
	}

	var zero T
	return Union(main, canvas, zero), nil
}
