package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/registry"
	"github.com/vovakirdan/gridplay/internal/storage"
)

var logger = log.New(io.Discard)

// SetLogger sets the logger used by the TUI and the SSH server.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// GameModel is the Bubble Tea model that drives one game.
// Standalone it quits on Back after game over; inside a session it hands
// control back to the menu instead.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	runID      string
	frames     *int // shared across value copies
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	inSession  bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for game. A zero seed is replaced by the
// current time.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	cfg = cfg.WithDefaults()
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		runID:      uuid.NewString(),
		frames:     new(int),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	logger.Debug("game started", "game", m.game.ID(), "run", m.runID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			if m.inSession {
				m.backToMenu = true
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)

	case action == core.ActionRestart && !m.gameState.GameOver:
		// Restart only applies to finished games.

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok && r.Resize(msg.Width, msg.Height) {
		m.gameState = m.game.State()
		return m, nil
	}

	// The board follows the window, so a running game starts over.
	if !m.gameState.GameOver {
		m.restart(false)
	}
	return m, nil
}

func (m *GameModel) restart(reseed bool) {
	if reseed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runID = uuid.NewString()
	*m.frames = 0
	m.scoreSaved = false
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart(true)
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	*m.frames++

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Zero scores are not kept. Ticks are
// the game's own step count when it keeps one, platform frames otherwise.
func (m *GameModel) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	ticks := *m.frames
	if tc, ok := m.game.(registry.TickCounter); ok {
		ticks = tc.Ticks()
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		RunID:    m.runID,
		GameID:   m.game.ID(),
		Seed:     m.config.Seed,
		Ticks:    ticks,
		Score:    m.gameState.Score,
		GameOver: true,
	})
	if err != nil {
		logger.Error("could not save run", "game", m.game.ID(), "err", err)
		return
	}
	logger.Info("run saved", "game", m.game.ID(), "run", m.runID, "score", m.gameState.Score)
}

// saveScreenshot writes the current screen as plain text under
// ~/.gridplay/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".gridplay", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("screenshot failed", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game full-screen until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewGameModel(game, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
