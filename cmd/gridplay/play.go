package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/platform/tui"
	"github.com/vovakirdan/gridplay/internal/registry"
	"github.com/vovakirdan/gridplay/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move (cursor in mines)
  Up/X         - Rotate clockwise (tetris)
  Z            - Rotate anti-clockwise (tetris)
  Space        - Hard drop (tetris), reveal (mines)
  Enter        - Reveal (mines), step a generation while paused (life)
  F            - Flag a cell (mines)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty presets:
  easy   - slow gravity, small minefield, sparse life
  normal - the config's defaults
  hard   - fast gravity, expert minefield, dense life

Examples:
  gridplay play tetris
  gridplay play mines --difficulty easy
  gridplay play life --seed 42
  gridplay play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

// terminalConfig builds a runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	} else {
		logger.Debug("using default screen size", "err", err)
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Difficulty = flagDifficulty
	return cfg
}

// openStore opens the score database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'gridplay list' to see available games)", gameID)
	}
	useConfigFor(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
