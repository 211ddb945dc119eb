package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridplay/internal/games/tetris"
	"github.com/vovakirdan/gridplay/internal/storage"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestListCommand(t *testing.T) {
	out := execute(t, "list")
	assert.Contains(t, out, "tetris")
	assert.Contains(t, out, "mines")
	assert.Contains(t, out, "life")
}

func TestParseTraceKinds(t *testing.T) {
	kinds, err := parseTraceKinds([]string{"line:clear", " GAME:OVER "})
	require.NoError(t, err)
	assert.Equal(t, map[tetris.EventKind]bool{
		tetris.EventLineClear: true,
		tetris.EventGameOver:  true,
	}, kinds)

	kinds, err = parseTraceKinds([]string{"all"})
	require.NoError(t, err)
	assert.Len(t, kinds, len(tetris.EventKinds()))

	_, err = parseTraceKinds([]string{"line:cleared"})
	assert.ErrorIs(t, err, tetris.ErrUnknownEvent)
}

func TestSimCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	t.Setenv("HOME", t.TempDir())

	out := execute(t, "sim", "--seed", "5", "--ticks", "200", "--width", "6", "--height", "8",
		"--trace", "tetromino:spawn", "--save", "--db", dbPath)

	assert.Contains(t, out, "tetromino:spawn")
	assert.Contains(t, out, "Seed:      5")
	assert.Contains(t, out, "Run:       ")
	assert.Contains(t, out, "  +------------+")

	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.RecentRuns("tetris", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(5), runs[0].Seed)
	assert.NotEmpty(t, runs[0].Board)
}

func TestDescribeEvent(t *testing.T) {
	assert.Equal(t, "     3  line:clear  2 rows [4 5]",
		describeEvent(tetris.LineClearEvent{Tick: 3, Lines: 2, Rows: []int{4, 5}}))
	assert.Equal(t, "    10  tetromino:landing  at (1,2)",
		describeEvent(tetris.LandingEvent{Tick: 10, Final: tetris.Position{X: 1, Y: 2}}))
}
