package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnion(t *testing.T) {
	assert.Equal(t, Grid[int]{
		{1, 1, 0},
		{0, 1, 1},
	}, Union(Grid[int]{
		{1, 0, 0},
		{0, 0, 1},
	}, Grid[int]{
		{0, 1},
		{0, 1},
	}, 0))
}

func TestUnionFill(t *testing.T) {
	assert.Equal(t, Grid[int]{
		{1, 9},
		{9, 2},
	}, Union(Grid[int]{
		{1, 0},
	}, Grid[int]{
		{0, 0},
		{0, 2},
	}, 9))
}

func TestUnionDimensions(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Grid[int]
		height, wd int
	}{
		{"same size", Blank(3, 2, 0), Blank(3, 2, 0), 2, 3},
		{"a wider", Blank(5, 1, 0), Blank(2, 3, 0), 3, 5},
		{"b taller", Blank(1, 1, 0), Blank(1, 4, 0), 4, 1},
		{"a empty", nil, Blank(2, 2, 0), 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := Union(tc.a, tc.b, 0)
			assert.Equal(t, tc.height, u.Height())
			assert.Equal(t, tc.wd, u.Width())
		})
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, Grid[int]{
		{2, 1, 0},
		{0, 1, 1},
	}, Add(Grid[int]{
		{1, 0, 0},
		{0, 0, 1},
	}, Grid[int]{
		{1, 1},
		{0, 1},
	}))
}

func TestIntersection(t *testing.T) {
	// The result keeps the union's extent; cells outside the overlap are 0.
	assert.Equal(t, Grid[int]{
		{1, 0, 0},
		{0, 0, 0},
	}, Intersection(Grid[int]{
		{1, 0, 0},
		{0, 0, 1},
	}, Grid[int]{
		{1, 1},
		{0, 1},
	}))
}

func TestSuperimpose(t *testing.T) {
	imposed := Grid[int]{
		{1, 1},
		{1, 0},
	}

	main := Blank(5, 5, 0)
	main[4][4] = 2

	got, err := Superimpose(main, imposed, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, Grid[int]{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 2},
	}, got)

	// Inputs are untouched.
	assert.Equal(t, 0, main[1][2])
}

func TestSuperimposeOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"below", 0, 5},
		{"right edge", 2, 0},
		{"bottom edge", 0, 2},
		{"negative x", -1, 0},
		{"negative y", 0, -1},
	}

	inset := Grid[int]{{1, 1}, {1, 1}}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Superimpose(Blank(3, 3, 0), inset, tc.x, tc.y)
			assert.True(t, errors.Is(err, ErrOutOfBounds), "expected ErrOutOfBounds, got %v", err)
		})
	}
}

func TestSuperimposeCrop(t *testing.T) {
	got, err := Superimpose(Blank(3, 3, 0), Grid[int]{{1, 1}, {1, 1}}, 2, -1, Crop())
	require.NoError(t, err)
	assert.Equal(t, Grid[int]{
		{0, 0, 1},
		{0, 0, 0},
		{0, 0, 0},
	}, got)
}
