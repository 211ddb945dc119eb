// Package minesweeper generates minefields and resolves reveals.
//
// A board is a grid of 0 (safe) and 1 (mine). The player-facing state is a
// grid of the same size where -1 marks an unrevealed cell and any other
// value is the revealed cell's neighbouring mine count.
package minesweeper

import (
	"math/rand"

	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/grid"
)

const (
	Empty = 0
	Mine  = 1

	// Hidden marks an unrevealed cell in the player state.
	Hidden = -1

	// clearArea is the size of the region around a first move that never
	// holds a mine, and the number of cells every board keeps free.
	clearArea = 9
)

// Cell addresses a board cell by row and column.
type Cell struct {
	I, J int
}

// BoardOption configures NewBoard.
type BoardOption func(*boardOptions)

type boardOptions struct {
	keepClear *Cell
}

// KeepClear keeps the cell at (i, j) and its neighbours free of mines, so
// that revealing it opens an area.
func KeepClear(i, j int) BoardOption {
	return func(o *boardOptions) {
		o.keepClear = &Cell{I: i, J: j}
	}
}

// NewBoard places up to mines mines uniformly at random. The count is
// capped at width*height-9 and at the number of cells outside the keep-clear
// area.
func NewBoard(rng *rand.Rand, width, height, mines int, opts ...BoardOption) grid.Grid[int] {
	var o boardOptions
	for _, opt := range opts {
		opt(&o)
	}

	board := grid.Zero[int](width, height)

	var candidates []Cell
	grid.ForEach(board, func(_ int, i, j int) {
		if o.keepClear != nil && core.Abs(i-o.keepClear.I) <= 1 && core.Abs(j-o.keepClear.J) <= 1 {
			return
		}
		candidates = append(candidates, Cell{I: i, J: j})
	})

	n := min(mines, width*height-clearArea, len(candidates))
	if n <= 0 {
		return board
	}

	rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})
	for _, c := range candidates[:n] {
		board[c.I][c.J] = Mine
	}
	return board
}

// Counts returns, for every cell, the number of neighbouring mines.
func Counts(board grid.Grid[int]) grid.Grid[int] {
	return grid.Map(board, func(_ int, i, j int) int {
		return grid.CountNeighbourValues(board, i, j)
	})
}

// HiddenState returns a player state with every cell unrevealed.
func HiddenState(width, height int) grid.Grid[int] {
	return grid.Blank(width, height, Hidden)
}

// Reveal uncovers (i, j) in state, flooding outwards through cells with no
// neighbouring mines. It returns the number of cells newly revealed.
// Already revealed cells and cells flagged in flags are left alone; flags
// may be nil.
func Reveal(state, counts grid.Grid[int], flags grid.Grid[bool], i, j int) int {
	revealed := 0
	stack := []Cell{{I: i, J: j}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if v, ok := state.At(c.I, c.J); !ok || v != Hidden {
			continue
		}
		if flagged, _ := flags.At(c.I, c.J); flagged {
			continue
		}

		count := counts[c.I][c.J]
		state[c.I][c.J] = count
		revealed++

		if count < 1 {
			grid.ForEveryNeighbour(counts, c.I, c.J, func(_ int, ni, nj int) {
				if state[ni][nj] == Hidden {
					stack = append(stack, Cell{I: ni, J: nj})
				}
			})
		}
	}
	return revealed
}

// NextState returns a function that applies moves to a fresh hidden state
// for board. Each call reveals (i, j) and returns a copy of the resulting
// state, or false if (i, j) is a mine or off the board.
func NextState(board grid.Grid[int]) func(i, j int) (grid.Grid[int], bool) {
	counts := Counts(board)
	state := HiddenState(board.Width(), board.Height())

	return func(i, j int) (grid.Grid[int], bool) {
		if v, ok := board.At(i, j); !ok || v == Mine {
			return nil, false
		}
		Reveal(state, counts, nil, i, j)
		return state.Clone(), true
	}
}

