// gridplay plays grid games in the terminal: a falling-block game,
// Minesweeper and Conway's Game of Life.
//
// Usage:
//
//	gridplay list              - List available games
//	gridplay play <game>       - Play a game
//	gridplay menu              - Pick games interactively
//	gridplay serve             - Start SSH server for remote play
//	gridplay scores <game>     - Show high scores for a game
//	gridplay sim               - Run the falling-block engine headless
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.gridplay/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridplay/internal/games/life"
	"github.com/vovakirdan/gridplay/internal/games/minesweeper"
	"github.com/vovakirdan/gridplay/internal/games/tetris"
	"github.com/vovakirdan/gridplay/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "gridplay",
	Level:           log.WarnLevel,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridplay",
	Short: "Grid games in your terminal",
	Long: `gridplay runs grid-based games in the terminal: a falling-block game,
Minesweeper and Conway's Game of Life.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless falling-block run

Examples:
  gridplay list
  gridplay play tetris
  gridplay play mines --difficulty hard
  gridplay menu
  gridplay serve --ssh :2222
  gridplay sim --ticks 5000 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridplay/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup applies the global flags before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	tui.SetLogger(logger)
	tetris.SetLogger(logger)
	minesweeper.SetLogger(logger)
	life.SetLogger(logger)

	tetris.SetDifficultyPreset(flagDifficulty)
	minesweeper.SetDifficultyPreset(flagDifficulty)
	life.SetDifficultyPreset(flagDifficulty)
	return nil
}

// useConfigFor points the given game at --config and resets the others,
// since one YAML file only describes one game.
func useConfigFor(gameID string) {
	pick := func(id string) string {
		if id == gameID {
			return flagConfig
		}
		return ""
	}
	tetris.SetConfigPath(pick("tetris"))
	minesweeper.SetConfigPath(pick("mines"))
	life.SetConfigPath(pick("life"))
}
