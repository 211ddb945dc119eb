package minesweeper

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridplay/internal/config"
	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/registry"
)

const (
	cellWidth = 3 // "[n]" with the cursor, " n " without
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

// Game adapts Minesweeper to the terminal platform. The cursor moves with
// the arrow keys, Enter reveals and F flags.
type Game struct {
	cfg  config.MinesConfig
	game *Minesweeper

	cursor  Cell
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// NewGame creates a Minesweeper game for the platform.
func NewGame() *Game {
	return &Game{}
}

func init() {
	registry.Register("mines", func() registry.Game {
		return NewGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mines"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset starts a new field. Mines are placed on the first reveal.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadMines(configPath)
	if err != nil {
		logger.Warn("using default mines config", "err", err)
		cfg = config.DefaultMinesConfig()
	}
	if preset := config.ResolvePreset(runtime.Difficulty, difficultyPreset); preset != "" {
		config.ApplyMinesPreset(&cfg, preset)
	}
	cfg.Board.Width = max(cfg.Board.Width, 3)
	cfg.Board.Height = max(cfg.Board.Height, 3)
	g.cfg = cfg

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.paused = false
	g.checkScreenSize()

	g.game = New(rand.New(rand.NewSource(runtime.Seed)), cfg.Board.Width, cfg.Board.Height, cfg.Board.Mines)
	g.cursor = Cell{I: cfg.Board.Height / 2, J: cfg.Board.Width / 2}
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.cfg.Board.Width*cellWidth+2 > g.screenW || g.cfg.Board.Height+2+hudHeight*2 > g.screenH
}

// Resize keeps the field; only the too-small check follows the window.
func (g *Game) Resize(width, height int) bool {
	g.screenW, g.screenH = width, height
	g.checkScreenSize()
	return true
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.over() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursor.I--
	case in.Has(core.ActionDown):
		g.cursor.I++
	case in.Has(core.ActionLeft):
		g.cursor.J--
	case in.Has(core.ActionRight):
		g.cursor.J++
	}
	g.cursor.I = core.Clamp(g.cursor.I, 0, g.game.Height()-1)
	g.cursor.J = core.Clamp(g.cursor.J, 0, g.game.Width()-1)

	// The cursor is clamped, so these cannot be out of bounds.
	switch {
	case in.Has(core.ActionConfirm), in.Has(core.ActionJump):
		_, _ = g.game.Move(g.cursor.I, g.cursor.J)
	case in.Has(core.ActionFlag):
		_, _ = g.game.ToggleFlag(g.cursor.I, g.cursor.J)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) over() bool {
	return g.game.Exploded() || g.game.Won()
}

// State returns the current game state. The score is the number of safe
// cells revealed.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.game.Revealed(),
		GameOver: g.over(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Minesweeper exposes the underlying game.
func (g *Game) Minesweeper() *Minesweeper {
	return g.game
}

var countColors = [...]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Render draws the field, the cursor and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.screenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	w, h := g.game.Width(), g.game.Height()
	frameW := w*cellWidth + 2
	x0 := (g.screenW - frameW) / 2
	y0 := hudHeight

	dst.DrawText(x0, 0, fmt.Sprintf("Mines %d  Flags %d  Revealed %d",
		g.game.MineCount(), g.game.Flags(), g.game.Revealed()))
	dst.DrawBox(core.NewRect(x0, y0, frameW, h+2))

	state := g.game.State()
	board, generated := g.game.Board()

	for i := range h {
		for j := range w {
			r, c := '·', core.ColorGray
			switch {
			case state[i][j] > 0:
				r, c = rune('0'+state[i][j]), countColors[state[i][j]]
			case state[i][j] == 0:
				r = ' '
			case g.game.Flagged(i, j):
				r, c = 'F', core.ColorBrightRed
			case g.game.Exploded() && generated && board[i][j] == Mine:
				r, c = '*', core.ColorRed
			}

			px := x0 + 1 + j*cellWidth
			py := y0 + 1 + i
			dst.SetColored(px+1, py, r, c)
			if g.cursor == (Cell{I: i, J: j}) {
				dst.SetColored(px, py, '[', core.ColorBrightYellow)
				dst.SetColored(px+2, py, ']', core.ColorBrightYellow)
			}
		}
	}

	status := "Enter reveal  F flag  P pause"
	switch {
	case g.game.Exploded():
		status = "BOOM! R to restart"
	case g.game.Won():
		status = "CLEARED! R to restart"
	case g.paused:
		status = "PAUSED"
	}
	dst.DrawTextColored(x0, y0+h+2, status, core.ColorBrightWhite)
}
