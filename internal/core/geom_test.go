package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)
	assert.Equal(t, 6, r.Right())
	assert.Equal(t, 5, r.Bottom())

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}

	assert.False(t, NewRect(0, 0, 0, 0).Contains(0, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(15, 0, 10))
	assert.Equal(t, -3, Clamp(-7, -3, 4))
	assert.InDelta(t, 1.0, Clamp(1.5, 0.0, 1.0), 1e-9)

	// An empty range resolves to the lower bound.
	assert.Equal(t, 3, Clamp(2, 3, 1))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
	assert.Equal(t, int64(9), Abs(int64(-9)))
	assert.InDelta(t, 0.5, Abs(-0.5), 1e-9)
}
