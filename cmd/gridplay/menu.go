package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridplay/internal/platform/tui"
	"github.com/vovakirdan/gridplay/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Start gridplay in interactive menu mode.

Use arrow keys or j/k to pick a game, left/right to pick the difficulty
and Enter to play. After a game you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  gridplay menu
  gridplay menu --difficulty hard
  gridplay menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		useConfigFor(res.GameID)
		game, err := registry.Create(res.GameID)
		if err != nil {
			logger.Error("could not create game", "game", res.GameID, "err", err)
			continue
		}

		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, runCfg); err != nil {
			logger.Error("game exited with error", "game", res.GameID, "err", err)
		}
	}
}
