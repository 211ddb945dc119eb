package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/grid"
)

// Minesweeper is a single game. The minefield is generated on the first
// move, keeping that cell and its neighbours clear.
type Minesweeper struct {
	width, height int
	mines         int // requested; the board may hold fewer
	rng           *rand.Rand

	board  grid.Grid[int] // nil until the first move
	counts grid.Grid[int]
	state  grid.Grid[int]
	flags  grid.Grid[bool]
	moves  []Cell

	revealed int
	exploded bool
}

// New creates a game on a width x height field with the given mine count.
func New(rng *rand.Rand, width, height, mines int) *Minesweeper {
	return &Minesweeper{
		width:  width,
		height: height,
		mines:  mines,
		rng:    rng,
		state:  HiddenState(width, height),
		flags:  grid.Zero[bool](width, height),
	}
}

// Width returns the field width.
func (m *Minesweeper) Width() int { return m.width }

// Height returns the field height.
func (m *Minesweeper) Height() int { return m.height }

func (m *Minesweeper) checkBounds(i, j int) error {
	if !core.NewRect(0, 0, m.width, m.height).Contains(j, i) {
		return fmt.Errorf("minesweeper: cell (%d,%d): %w", i, j, grid.ErrOutOfBounds)
	}
	return nil
}

// Move reveals (i, j). It returns false if the cell holds a mine, which
// ends the game. Moves on revealed or flagged cells change nothing.
func (m *Minesweeper) Move(i, j int) (bool, error) {
	if err := m.checkBounds(i, j); err != nil {
		return false, err
	}
	m.moves = append(m.moves, Cell{I: i, J: j})

	if m.board == nil {
		m.board = NewBoard(m.rng, m.width, m.height, m.mines, KeepClear(i, j))
		m.counts = Counts(m.board)
	}

	if m.flags[i][j] {
		return true, nil
	}
	if m.board[i][j] == Mine {
		m.exploded = true
		return false, nil
	}

	m.revealed += Reveal(m.state, m.counts, m.flags, i, j)
	return true, nil
}

// ToggleFlag marks or unmarks a hidden cell. It reports whether the cell
// is flagged afterwards.
func (m *Minesweeper) ToggleFlag(i, j int) (bool, error) {
	if err := m.checkBounds(i, j); err != nil {
		return false, err
	}
	if m.state[i][j] != Hidden {
		return false, nil
	}
	m.flags[i][j] = !m.flags[i][j]
	return m.flags[i][j], nil
}

// Flagged reports whether (i, j) carries a flag.
func (m *Minesweeper) Flagged(i, j int) bool {
	v, _ := m.flags.At(i, j)
	return v
}

// Flags returns the number of flags placed.
func (m *Minesweeper) Flags() int {
	return grid.Reduce(m.flags, func(acc int, f bool) int {
		if f {
			return acc + 1
		}
		return acc
	}, 0)
}

// MineCount returns the number of mines on the board, or the requested
// count before the first move.
func (m *Minesweeper) MineCount() int {
	if m.board == nil {
		return m.mines
	}
	return grid.Sum(m.board)
}

// Revealed returns the number of revealed cells.
func (m *Minesweeper) Revealed() int { return m.revealed }

// Exploded reports whether a mine was hit.
func (m *Minesweeper) Exploded() bool { return m.exploded }

// Won reports whether every safe cell has been revealed.
func (m *Minesweeper) Won() bool {
	return m.board != nil && !m.exploded && m.revealed == m.width*m.height-grid.Sum(m.board)
}

// State returns a copy of the player state.
func (m *Minesweeper) State() grid.Grid[int] {
	return m.state.Clone()
}

// Board returns a copy of the minefield and whether it has been generated.
func (m *Minesweeper) Board() (grid.Grid[int], bool) {
	if m.board == nil {
		return nil, false
	}
	return m.board.Clone(), true
}

// Moves returns the moves played so far.
func (m *Minesweeper) Moves() []Cell {
	return append([]Cell(nil), m.moves...)
}
