package grid

// RotateClockwise turns the grid a quarter turn clockwise.
// Cell (i, j) moves to (j, h-1-i), h being the input height; the result has
// width and height swapped.
func RotateClockwise[T any](g Grid[T]) Grid[T] {
	h, w := g.Height(), g.Width()
	out := Zero[T](h, w)
	for i := range h {
		for j := range w {
			out[j][h-1-i] = g[i][j]
		}
	}
	return out
}

// RotateAntiClockwise turns the grid a quarter turn anti-clockwise.
// Cell (i, j) moves to (w-1-j, i), w being the input width.
func RotateAntiClockwise[T any](g Grid[T]) Grid[T] {
	h, w := g.Height(), g.Width()
	out := Zero[T](h, w)
	for i := range h {
		for j := range w {
			out[w-1-j][i] = g[i][j]
		}
	}
	return out
}
