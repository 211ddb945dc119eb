package life

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridplay/internal/config"
	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/grid"
	"github.com/vovakirdan/gridplay/internal/registry"
)

const (
	aliveRune = '█'
	hudHeight = 1
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// SetLogger sets the logger used for config fallbacks.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game runs a Life simulation, one generation every configured interval.
// The run ends when the population dies out or stops changing.
type Game struct {
	cfg   config.LifeConfig
	rng   *rand.Rand
	board grid.Grid[int]

	frame      uint64
	generation int
	screenW    int
	screenH    int

	paused   bool
	stable   bool
	tooSmall bool
}

// New creates a new Game of Life.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("life", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "life"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Game of Life"
}

// Reset seeds a new random population.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadLife(configPath)
	if err != nil {
		logger.Warn("using default life config", "err", err)
		cfg = config.DefaultLifeConfig()
	}
	if preset := config.ResolvePreset(runtime.Difficulty, difficultyPreset); preset != "" {
		config.ApplyLifePreset(&cfg, preset)
	}
	if cfg.Interval < 1 {
		cfg.Interval = 1
	}
	g.cfg = cfg

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.frame = 0
	g.generation = 0
	g.paused = false
	g.stable = false

	w, h := cfg.Board.Width, cfg.Board.Height
	if w <= 0 {
		w = runtime.ScreenW - 2
	}
	if h <= 0 {
		h = runtime.ScreenH - 2 - hudHeight
	}
	g.tooSmall = w < 3 || h < 3 || w+2 > runtime.ScreenW || h+2+hudHeight > runtime.ScreenH
	if g.tooSmall {
		w, h = max(w, 1), max(h, 1)
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.board = Random(g.rng, w, h, cfg.Board.Density)
}

// Step advances the simulation by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if g.tooSmall || g.stable {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	switch {
	case g.paused && in.Has(core.ActionConfirm):
		g.advance()
	case !g.paused && g.frame%uint64(g.cfg.Interval) == 0:
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// Resize keeps a fixed-size board running. A board fitted to the screen
// has to be reseeded, so it reports false.
func (g *Game) Resize(width, height int) bool {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	if w <= 0 || h <= 0 {
		return false
	}
	g.screenW, g.screenH = width, height
	g.tooSmall = w < 3 || h < 3 || w+2 > width || h+2+hudHeight > height
	return true
}

// Ticks returns the number of generations computed.
func (g *Game) Ticks() int {
	return g.generation
}

func (g *Game) advance() {
	next := Tick(g.board)
	g.generation++
	if Population(next) == 0 || grid.Equal(next, g.board) {
		g.stable = true
	}
	g.board = next
}

// State returns the current game state. The score is the number of
// generations computed.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.generation,
		GameOver: g.stable,
		Paused:   g.paused || g.tooSmall,
	}
}

// Board returns a copy of the current generation.
func (g *Game) Board() grid.Grid[int] {
	return g.board.Clone()
}

// Render draws the population inside a frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	w, h := g.board.Width(), g.board.Height()
	x0 := (g.screenW - w - 2) / 2
	y0 := hudHeight

	dst.DrawText(x0, 0, fmt.Sprintf("Generation %d  Population %d", g.generation, Population(g.board)))
	dst.DrawBox(core.NewRect(x0, y0, w+2, h+2))

	grid.ForEach(g.board, func(cell int, i, j int) {
		if cell != 0 {
			dst.SetColored(x0+1+j, y0+1+i, aliveRune, g.cfg.Color)
		}
	})

	var banner string
	switch {
	case g.stable && Population(g.board) == 0:
		banner = "EXTINCT"
	case g.stable:
		banner = "STABLE"
	case g.paused:
		banner = "PAUSED - Enter steps"
	default:
		return
	}
	dst.DrawTextColored(x0+(w+2-len(banner))/2, y0+(h+2)/2, banner, core.ColorBrightWhite)
}
