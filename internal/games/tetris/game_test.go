package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/grid"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: seed})
	require.NoError(t, g.Err())
	return g
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 37 {
		case 3:
			inputs[i].Set(core.ActionLeft)
		case 11:
			inputs[i].Set(core.ActionRotate)
		case 19:
			inputs[i].Set(core.ActionRight)
		case 29:
			inputs[i].Set(core.ActionJump)
		}
	}

	a := newTestGame(t, 12345)
	b := newTestGame(t, 12345)
	for i, in := range inputs {
		a.Step(in)
		b.Step(in.Clone())
		if i%50 == 0 {
			require.Equal(t, a.Snapshot(), b.Snapshot(), "diverged at frame %d", i)
		}
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestGameGravityInterval(t *testing.T) {
	g := newTestGame(t, 1)
	start := g.Snapshot()
	require.NotNil(t, start.Piece)

	interval := g.cfg.Gravity.Interval
	for range interval - 1 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 0, g.Snapshot().Ticks)

	g.Step(core.NewInputFrame())
	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Ticks)
	assert.Equal(t, start.Position.Y+1, snap.Position.Y)
}

func TestGameHardDrop(t *testing.T) {
	g := newTestGame(t, 7)
	assert.Equal(t, 1, g.Snapshot().Pieces)

	g.Step(core.Frame(core.ActionJump))
	snap := g.Snapshot()
	assert.Nil(t, snap.Piece, "the dropped piece has landed")
	assert.Equal(t, 4, grid.Sum(snap.Board))
}

func TestGameCountsLines(t *testing.T) {
	g := newTestGame(t, 3)
	e := g.Engine()

	board := grid.Zero[int](e.Width(), e.Height())
	board[e.Height()-1] = grid.Blank(e.Width(), 1, 1)[0]
	require.NoError(t, e.SetBoard(board))

	for range g.cfg.Gravity.Interval {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, 1, g.State().Score)
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 9)

	g.Step(core.Frame(core.ActionPause))
	assert.True(t, g.State().Paused)

	before := g.Snapshot()
	g.Step(core.Frame(core.ActionLeft))
	after := g.Snapshot()
	assert.Equal(t, before.Position, after.Position)

	g.Step(core.Frame(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestGameOverEndsRun(t *testing.T) {
	g := newTestGame(t, 5)
	e := g.Engine()
	require.NoError(t, e.SetBoard(grid.Blank(e.Width(), e.Height(), 0)))

	// Fill every row but leave one hole per row so nothing clears.
	board := grid.Blank(e.Width(), e.Height(), 1)
	for i := range board {
		board[i][i%e.Width()] = 0
	}
	require.NoError(t, e.SetBoard(board))

	for range 10 {
		g.Step(core.Frame(core.ActionJump))
	}
	assert.True(t, g.State().GameOver)
	assert.NoError(t, g.Err())
}

func TestGameTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	assert.True(t, g.State().Paused)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 30)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "TETRIS")
	assert.Contains(t, out, "Lines  0")
	assert.Contains(t, out, "Next")
}

func TestGameResizeKeepsRun(t *testing.T) {
	g := newTestGame(t, 3)
	for range g.cfg.Gravity.Interval {
		g.Step(core.NewInputFrame())
	}
	before := g.Snapshot()
	require.Equal(t, 1, g.Ticks())

	assert.True(t, g.Resize(20, 10))
	assert.True(t, g.State().Paused, "board no longer fits")
	g.Step(core.NewInputFrame())

	assert.True(t, g.Resize(80, 30))
	assert.False(t, g.State().Paused)
	after := g.Snapshot()
	assert.Equal(t, before.Frame+1, after.Frame)
	after.Frame = before.Frame
	assert.Equal(t, before, after, "a resize does not touch the engine")
	assert.Equal(t, 1, g.Ticks())
}
