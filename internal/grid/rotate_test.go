package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateClockwise(t *testing.T) {
	assert.Equal(t, Grid[int]{
		{0, 1},
		{1, 1},
		{0, 1},
	}, RotateClockwise(Grid[int]{
		{1, 1, 1},
		{0, 1, 0},
	}))

	assert.Equal(t, Grid[int]{{1}, {1}, {1}, {1}}, RotateClockwise(Grid[int]{{1, 1, 1, 1}}))
}

func TestRotateAntiClockwise(t *testing.T) {
	assert.Equal(t, Grid[int]{
		{1, 0},
		{1, 0},
		{1, 1},
	}, RotateAntiClockwise(Grid[int]{
		{1, 1, 1},
		{1, 0, 0},
	}))
}

func TestRotateRoundTrip(t *testing.T) {
	shapes := []Grid[int]{
		small,
		big,
		{{1, 2, 3}},
		{{1}, {2}, {3}},
		{{1, 2, 3}, {4, 5, 6}},
		{{7}},
	}

	for _, g := range shapes {
		assert.Equal(t, g, RotateClockwise(RotateAntiClockwise(g)))
		assert.Equal(t, g, RotateAntiClockwise(RotateClockwise(g)))

		r := g
		for range 4 {
			r = RotateClockwise(r)
		}
		assert.Equal(t, g, r, "four clockwise turns should be the identity")
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	g := Blank(3, 2, 1)
	r := RotateClockwise(g)
	assert.Equal(t, 3, r.Height())
	assert.Equal(t, 2, r.Width())
}
