package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")

	// Reopen runs migrations again against the existing schema.
	store, err = Open(dbPath)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 200, 50} {
		id, err := store.SaveScore("tetris", s)
		require.NoError(t, err)
		assert.Positive(t, id)
	}
	_, err := store.SaveScore("mines", 7)
	require.NoError(t, err)

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)

	for _, s := range scores {
		assert.Equal(t, "tetris", s.GameID)
		_, err := uuid.Parse(s.RunID)
		assert.NoError(t, err, "run id should be a uuid")
	}
	assert.NotEqual(t, scores[0].RunID, scores[1].RunID)

	mines, err := store.TopScores("mines", 10)
	require.NoError(t, err)
	assert.Len(t, mines, 1)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveScore("life", (i+1)*100)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("life", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{500, 400, 300}, []int{scores[0].Score, scores[1].Score, scores[2].Score})

	// Non-positive limit falls back to the default.
	scores, err = store.TopScores("life", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 5)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	require.NoError(t, err)
	assert.Zero(t, high)

	for _, s := range []int{1, 3, 2} {
		_, err := store.SaveScore("tetris", s)
		require.NoError(t, err)
	}

	high, err = store.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 3, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 200)
	store.SaveScore("mines", 300)

	require.NoError(t, store.ClearScores("tetris"))

	tetris, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	assert.Empty(t, tetris)

	mines, err := store.TopScores("mines", 10)
	require.NoError(t, err)
	assert.Len(t, mines, 1, "clearing one game must not touch another")
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("life", i*10)
	}

	scores, err := store.AllScores("life")
	require.NoError(t, err)
	assert.Len(t, scores, 20)
	assert.Equal(t, 190, scores[0].Score)
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveRun(RunRecord{
		GameID:   "tetris",
		Seed:     42,
		Ticks:    310,
		Score:    4,
		GameOver: true,
		Board:    "0000\n1101",
	})
	require.NoError(t, err)
	_, err = uuid.Parse(runID)
	require.NoError(t, err)

	run, err := store.RunByID(runID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "tetris", run.GameID)
	assert.Equal(t, int64(42), run.Seed)
	assert.Equal(t, 310, run.Ticks)
	assert.Equal(t, 4, run.Score)
	assert.True(t, run.GameOver)
	assert.Equal(t, "0000\n1101", run.Board)

	// The run's score lands in the scoreboard under the same run id.
	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, runID, scores[0].RunID)
	assert.Equal(t, 4, scores[0].Score)
}

func TestStoreSaveRunDuplicateID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	_, err := store.SaveRun(RunRecord{RunID: id, GameID: "tetris", Score: 1})
	require.NoError(t, err)

	_, err = store.SaveRun(RunRecord{RunID: id, GameID: "tetris", Score: 2})
	assert.Error(t, err)

	// The failed run must not leave a score behind.
	scores, err := store.AllScores("tetris")
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID("nope")
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveRun(RunRecord{GameID: "tetris", Seed: int64(i), Score: i})
		require.NoError(t, err)
	}
	_, err := store.SaveRun(RunRecord{GameID: "life", Seed: 9})
	require.NoError(t, err)

	runs, err := store.RecentRuns("tetris", 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, int64(4), runs[0].Seed, "newest run first")
	assert.Equal(t, int64(2), runs[2].Seed)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tetris")
	require.NoError(t, err)
	assert.Zero(t, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	for _, s := range []int{2, 4, 6} {
		store.SaveScore("tetris", s)
	}
	store.SaveScore("mines", 1)

	stats, err = store.GetGameStats("tetris")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.GamesCount)
	assert.Equal(t, 6, stats.HighScore)
	assert.InDelta(t, 4.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(12), stats.TotalScore)
	assert.False(t, stats.LastPlayed.IsZero())

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Contains(t, all, "tetris")
	require.Contains(t, all, "mines")
	assert.Equal(t, 1, all["mines"].GamesCount)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created in nested directory")
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.gridplay/scores.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".gridplay", "scores.db"))
	assert.NoError(t, err)
}
