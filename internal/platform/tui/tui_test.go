package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridplay/internal/config"
	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/registry"
	"github.com/vovakirdan/gridplay/internal/storage"
)

// scriptedGame ends after a fixed number of frames with a fixed score.
type scriptedGame struct {
	endAfter int
	score    int
	frames   int
	resets   int
	last     core.InputFrame
	cfg      core.RuntimeConfig
	paused   bool
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.frames = 0
	g.resets++
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.frames++
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawTextColored(0, 0, "hi", core.ColorCyan)
}

func (g *scriptedGame) State() core.GameState {
	over := g.frames >= g.endAfter
	score := 0
	if over {
		score = g.score
	}
	return core.GameState{Score: score, GameOver: over, Paused: g.paused}
}

// registerScripted makes the stub selectable from menus and scoreboards.
func registerScripted() {
	if !registry.Exists("scripted") {
		registry.Register("scripted", func() registry.Game { return &scriptedGame{endAfter: 2, score: 3} })
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  string
		want core.Action
		quit bool
	}{
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{"down", core.ActionDown, false},
		{" ", core.ActionJump, false},
		{"x", core.ActionRotate, false},
		{"z", core.ActionRotateReverse, false},
		{"f", core.ActionFlag, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"y", core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, quit := km.MapKey(keyPress(tt.key))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.quit, quit)
		})
	}

	frame := core.NewInputFrame()
	assert.False(t, km.MapKeyToFrame(keyPress("x"), &frame))
	assert.True(t, frame.Has(core.ActionRotate))
	assert.True(t, km.MapKeyToFrame(keyPress("q"), &frame))
	assert.False(t, frame.Has(core.ActionQuit))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(keyPress("j")))
	assert.Equal(t, MenuActionLeft, km.MapKeyToMenuAction(keyPress("left")))
	assert.Equal(t, MenuActionRight, km.MapKeyToMenuAction(keyPress("l")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(keyPress("enter")))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(keyPress("tab")))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(keyPress("esc")))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(keyPress("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(keyPress("y")))
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.Set(2, 0, 'c')
	s.Set(0, 1, 'd')

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "c")
	assert.Contains(t, lines[1], "d")

	// Unknown colors fall back to the default style.
	assert.Equal(t, colorStyles[core.ColorDefault].Render("x"), styleFor(core.Color(200)).Render("x"))
}

func TestGameModelStepsAndSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &scriptedGame{endAfter: 3, score: 7}
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 99}
	m := NewGameModel(game, store, cfg)
	m.Init()
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, int64(99), game.cfg.Seed)

	var model tea.Model = m
	model, _ = model.Update(keyPress("x"))
	model, _ = model.Update(TickMsg{})
	assert.True(t, game.last.Has(core.ActionRotate))

	model, _ = model.Update(TickMsg{})
	assert.True(t, game.last.Empty(), "input is cleared between frames")
	model, _ = model.Update(TickMsg{})
	model, _ = model.Update(TickMsg{})

	gm := model.(GameModel)
	assert.True(t, gm.State().GameOver)

	scores, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1, "a finished run is saved once")
	assert.Equal(t, 7, scores[0].Score)

	run, err := store.RunByID(scores[0].RunID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, int64(99), run.Seed)
	assert.Equal(t, 3, run.Ticks)

	assert.Contains(t, gm.View(), "hi")
}

func TestGameModelRestart(t *testing.T) {
	game := &scriptedGame{endAfter: 1}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 3})
	m.Init()

	var model tea.Model = m
	model, _ = model.Update(TickMsg{})
	require.True(t, model.(GameModel).State().GameOver)

	model, _ = model.Update(keyPress("r"))
	model, _ = model.Update(TickMsg{})
	assert.Equal(t, 2, game.resets)
	assert.False(t, model.(GameModel).State().GameOver)
}

func TestGameModelBack(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 3})
	m.inSession = true
	m.Init()

	// Back while playing pauses.
	var model tea.Model = m
	model, _ = model.Update(keyPress("esc"))
	model, _ = model.Update(TickMsg{})
	require.True(t, model.(GameModel).State().Paused)
	assert.False(t, model.(GameModel).BackToMenu())

	// Back while paused leaves the game.
	model, _ = model.Update(keyPress("esc"))
	assert.True(t, model.(GameModel).BackToMenu())

	model, cmd := model.Update(keyPress("q"))
	assert.True(t, model.(GameModel).IsQuitting())
	assert.NotNil(t, cmd)
}

// steppingGame keeps its run through a resize and counts its own steps.
type steppingGame struct {
	*scriptedGame
	sizes [][2]int
}

func (g *steppingGame) Resize(width, height int) bool {
	g.sizes = append(g.sizes, [2]int{width, height})
	return true
}

func (g *steppingGame) Ticks() int { return g.frames * 10 }

func TestGameModelResize(t *testing.T) {
	t.Run("resizer keeps the run", func(t *testing.T) {
		game := &steppingGame{scriptedGame: &scriptedGame{endAfter: 100}}
		m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 3})
		m.Init()
		runID := m.runID

		var model tea.Model = m
		model, _ = model.Update(TickMsg{})
		model, _ = model.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
		assert.Equal(t, 1, game.resets)
		assert.Equal(t, [][2]int{{30, 12}}, game.sizes)
		assert.Equal(t, 1, game.frames)
		assert.Equal(t, runID, model.(GameModel).runID)
	})

	t.Run("others start over", func(t *testing.T) {
		game := &scriptedGame{endAfter: 100}
		m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 3})
		m.Init()

		var model tea.Model = m
		model, _ = model.Update(TickMsg{})
		model, _ = model.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
		assert.Equal(t, 2, game.resets)
		assert.Equal(t, 30, game.cfg.ScreenW)
		assert.Equal(t, 0, game.frames)
	})
}

func TestGameModelSavesGameTicks(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &steppingGame{scriptedGame: &scriptedGame{endAfter: 2, score: 5}}
	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 10, ScreenH: 3, Seed: 4})
	m.Init()

	var model tea.Model = m
	model, _ = model.Update(TickMsg{})
	model, _ = model.Update(TickMsg{})
	require.True(t, model.(GameModel).State().GameOver)

	run, err := store.RunByID(model.(GameModel).runID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, 20, run.Ticks, "the game's own step count wins over frames")
	assert.Equal(t, 5, run.Score)
}

func TestMenuModel(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Difficulty: "hard"})
	assert.Equal(t, config.DifficultyHard, m.Difficulty())

	var model tea.Model = m
	model, _ = model.Update(keyPress("right"))
	assert.Equal(t, config.DifficultyEasy, model.(MenuModel).Difficulty(), "difficulty wraps around")
	model, _ = model.Update(keyPress("left"))
	model, _ = model.Update(keyPress("left"))
	assert.Equal(t, config.DifficultyNormal, model.(MenuModel).Difficulty())

	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := model.(MenuModel).View()
	assert.Contains(t, view, "Difficulty: < normal >")

	model, _ = model.Update(keyPress("tab"))
	res := model.(MenuModel).Result()
	assert.True(t, res.WantsScoreboard)
	assert.Equal(t, 100, res.Config.ScreenW)
	assert.Equal(t, "normal", res.Config.Difficulty)
}

func TestMenuModelQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	assert.Equal(t, config.DifficultyNormal, m.Difficulty())

	model, cmd := m.Update(keyPress("q"))
	assert.NotNil(t, cmd)
	res := model.(MenuModel).Result()
	assert.True(t, res.Quit)
	assert.Empty(t, res.GameID)
}

func TestScoreboardViews(t *testing.T) {
	registerScripted()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	empty := NewScoreboardModel(store, 100, 30)
	assert.Contains(t, empty.View(), "No runs recorded yet.")

	_, err = store.SaveRun(storage.RunRecord{GameID: "scripted", Seed: 4242, Ticks: 88, Score: 5, GameOver: true})
	require.NoError(t, err)
	_, err = store.SaveScore("scripted", 9)
	require.NoError(t, err)

	var model tea.Model = NewScoreboardModel(store, 100, 30)
	for model.(ScoreboardModel).gameID() != "scripted" {
		model, _ = model.Update(keyPress("right"))
	}
	sb := model.(ScoreboardModel)
	assert.Equal(t, ViewTopScores, sb.Mode())
	assert.Len(t, sb.table.Rows(), 2)
	assert.Equal(t, "9", sb.table.Rows()[0][1])
	assert.Contains(t, sb.View(), "2 runs")

	model, _ = model.Update(keyPress("v"))
	sb = model.(ScoreboardModel)
	assert.Equal(t, ViewRecentRuns, sb.Mode())
	require.Len(t, sb.table.Rows(), 1, "only SaveRun records a run")
	assert.Equal(t, "4242", sb.table.Rows()[0][2])
	assert.Equal(t, "over", sb.table.Rows()[0][4])
	assert.Contains(t, sb.View(), "RECENT RUNS")

	model, cmd := model.Update(keyPress("esc"))
	assert.NotNil(t, cmd)
	assert.True(t, model.(ScoreboardModel).IsGoingBack())
}

func TestSessionModelSwitchesScreens(t *testing.T) {
	registerScripted()

	var model tea.Model = NewSessionModel(nil, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, Difficulty: "easy"})
	assert.Contains(t, model.View(), "G R I D P L A Y")

	model, _ = model.Update(keyPress("enter"))
	sm := model.(SessionModel)
	require.NotNil(t, sm.gameModel, "enter starts the selected game")
	assert.Equal(t, "easy", sm.gameModel.config.Difficulty)
	assert.NotZero(t, sm.gameModel.config.Seed)

	model, _ = model.Update(TickMsg{})
	model, _ = model.Update(TickMsg{})
	require.True(t, model.(SessionModel).gameModel.State().GameOver)
	assert.Contains(t, model.View(), "hi")

	model, _ = model.Update(keyPress("esc"))
	sm = model.(SessionModel)
	assert.Nil(t, sm.gameModel, "back after game over returns to the menu")
	assert.Equal(t, config.DifficultyEasy, sm.menu.Difficulty())

	model, _ = model.Update(keyPress("tab"))
	require.NotNil(t, model.(SessionModel).scoreboard)
	assert.Contains(t, model.View(), "HIGH SCORES")

	model, _ = model.Update(keyPress("esc"))
	assert.Nil(t, model.(SessionModel).scoreboard)

	model, cmd := model.Update(keyPress("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, model.View())
}

func TestShortRunID(t *testing.T) {
	assert.Equal(t, "1b4e28ba", shortRunID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	assert.Equal(t, "plain", shortRunID("plain"))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "toolong", centerText("toolong", 3))
}
