package tetris

import (
	"math/rand"

	"github.com/vovakirdan/gridplay/internal/grid"
)

// Shape is a tetromino bit-mask: 1 marks an occupied cell, 0 an empty one.
type Shape = grid.Grid[int]

// Kind identifies one of the five catalog shapes.
type Kind int

const (
	KindT Kind = iota
	KindL
	KindSkew
	KindSquare
	KindStraight
)

var shapes = [...]Shape{
	KindT: {
		{1, 1, 1},
		{0, 1, 0},
	},
	KindL: {
		{1, 1, 1},
		{1, 0, 0},
	},
	KindSkew: {
		{0, 1, 1},
		{1, 1, 0},
	},
	KindSquare: {
		{1, 1},
		{1, 1},
	},
	KindStraight: {
		{1, 1, 1, 1},
	},
}

// Kinds returns every catalog kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindT, KindL, KindSkew, KindSquare, KindStraight}
}

// Shape returns a fresh copy of the canonical shape.
func (k Kind) Shape() Shape {
	return shapes[k].Clone()
}

// Reverse returns the horizontally mirrored shape.
// This is a row-wise reversal, not a rotation.
func (k Kind) Reverse() Shape {
	return grid.Mirror(shapes[k])
}

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindSkew:
		return "Skew"
	case KindSquare:
		return "Square"
	case KindStraight:
		return "Straight"
	default:
		return "Unknown"
	}
}

// Rotate turns a piece a quarter turn clockwise.
func Rotate(p Shape) Shape {
	return grid.RotateClockwise(p)
}

// RotateReverse turns a piece a quarter turn anti-clockwise.
func RotateReverse(p Shape) Shape {
	return grid.RotateAntiClockwise(p)
}

// Generator produces the next piece for the buffer.
type Generator func() Shape

// RandomGenerator picks uniformly among the catalog shapes and their mirrored
// variants. The same rng seed always yields the same sequence.
func RandomGenerator(rng *rand.Rand) Generator {
	kinds := Kinds()
	return func() Shape {
		k := kinds[rng.Intn(len(kinds))]
		if rng.Intn(2) == 1 {
			return k.Reverse()
		}
		return k.Shape()
	}
}

// SequenceGenerator cycles through the given shapes in order.
// Useful for scripted runs where the piece order must be known up front.
func SequenceGenerator(seq ...Shape) Generator {
	i := 0
	return func() Shape {
		p := seq[i%len(seq)].Clone()
		i++
		return p
	}
}
