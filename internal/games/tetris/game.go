package tetris

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridplay/internal/config"
	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger is handed to every engine the game adapter creates.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetLogger sets the logger used by engines created from now on.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the engine to the terminal platform: input frames drive moves,
// and the engine ticks every gravity interval.
type Game struct {
	cfg    config.TetrisConfig
	engine *Engine

	frame  uint64
	lines  int
	pieces int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
	err      error // fatal engine error, ends the run
}

// New creates a new falling-block game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads the configuration and starts a fresh engine.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("using default tetris config", "err", err)
		cfg = config.DefaultTetrisConfig()
	}
	if preset := config.ResolvePreset(runtime.Difficulty, difficultyPreset); preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	if cfg.Gravity.Interval < 1 {
		cfg.Gravity.Interval = 1
	}
	g.cfg = cfg

	g.frame = 0
	g.lines = 0
	g.pieces = 0
	g.gameOver = false
	g.paused = false
	g.err = nil
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.checkScreenSize()

	g.engine = NewEngine(EngineConfig{
		Width:      cfg.Board.Width,
		Height:     cfg.Board.Height,
		Gravity:    cfg.Gravity.Enabled,
		BufferSize: cfg.Buffer.Size,
		Seed:       runtime.Seed,
		Logger:     logger,
	})

	// Handlers are registered on a fresh bus, so these cannot fail.
	_ = Subscribe(g.engine.Events(), func(e SpawnEvent) {
		g.pieces++
	})
	_ = Subscribe(g.engine.Events(), func(e LineClearEvent) {
		g.lines += e.Lines
	})
	_ = Subscribe(g.engine.Events(), func(e GameOverEvent) {
		g.gameOver = true
	})

	g.fail(g.engine.Start())
}

// checkScreenSize checks if the screen can hold the board and side panel.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Board.Width*cellWidth + 2 + sidePanelWidth
	minH := g.cfg.Board.Height + 2 + hudHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize follows a window change. The board size comes from config, so the
// run goes on; it only stalls while the window is too small.
func (g *Game) Resize(width, height int) bool {
	g.screenW, g.screenH = width, height
	g.checkScreenSize()
	return true
}

// Ticks returns the engine tick count of the current run.
func (g *Game) Ticks() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Ticks()
}

func (g *Game) fail(err error) {
	if err == nil || errors.Is(err, ErrGameOver) {
		return
	}
	logger.Error("engine failure", "err", err)
	g.err = err
	g.gameOver = true
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionJump):
		g.fail(g.engine.Drop())
	case in.Has(core.ActionLeft):
		g.engine.MoveLeft()
	case in.Has(core.ActionRight):
		g.engine.MoveRight()
	case in.Has(core.ActionDown):
		g.engine.MoveDown()
	case in.Has(core.ActionUp), in.Has(core.ActionRotate):
		g.engine.Rotate()
	case in.Has(core.ActionRotateReverse):
		g.engine.RotateReverse()
	}

	if !g.gameOver && g.frame%uint64(g.cfg.Gravity.Interval) == 0 {
		g.fail(g.engine.Tick())
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The score is the number of
// cleared lines.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Err returns the engine failure that ended the run, if any.
func (g *Game) Err() error {
	return g.err
}
