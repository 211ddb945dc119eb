package main

import (
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridplay/internal/config"
	"github.com/vovakirdan/gridplay/internal/games/tetris"
	"github.com/vovakirdan/gridplay/internal/storage"
)

var (
	flagSimTicks     int
	flagSimDropEvery int
	flagSimWidth     int
	flagSimHeight    int
	flagSimTrace     []string
	flagSimSave      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the falling-block engine headless",
	Long: `Run the falling-block engine without a terminal UI. A seeded random
player moves and rotates pieces and hard-drops on a schedule. The final
board, the lines cleared and whether the game ended are printed.

The same --seed always produces the same run.

Trace kinds: tick, tetromino:spawn, tetromino:landing, line:clear,
game:over, or all.

Examples:
  gridplay sim --seed 42
  gridplay sim --ticks 10000 --drop-every 2
  gridplay sim --trace line:clear,game:over
  gridplay sim --seed 7 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Maximum number of engine ticks")
	simCmd.Flags().IntVar(&flagSimDropEvery, "drop-every", 4, "Hard drop every n ticks (0 = never)")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 0, "Board width (0 = from config)")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 0, "Board height (0 = from config)")
	simCmd.Flags().StringSliceVar(&flagSimTrace, "trace", nil, "Event kinds to print as they happen")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
}

// parseTraceKinds resolves --trace names. "all" selects every kind.
func parseTraceKinds(names []string) (map[tetris.EventKind]bool, error) {
	kinds := make(map[tetris.EventKind]bool)
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, k := range tetris.EventKinds() {
				kinds[k] = true
			}
			continue
		}
		k, err := tetris.ParseEventKind(name)
		if err != nil {
			return nil, err
		}
		kinds[k] = true
	}
	return kinds, nil
}

// describeEvent formats one trace line.
func describeEvent(ev tetris.Event) string {
	switch ev := ev.(type) {
	case tetris.TickEvent:
		return fmt.Sprintf("%6d  %s", ev.Tick, ev.Kind())
	case tetris.SpawnEvent:
		return fmt.Sprintf("%6d  %s  %dx%d at (%d,%d)", ev.Tick, ev.Kind(),
			ev.Piece.Width(), ev.Piece.Height(), ev.Position.X, ev.Position.Y)
	case tetris.LandingEvent:
		return fmt.Sprintf("%6d  %s  at (%d,%d)", ev.Tick, ev.Kind(), ev.Final.X, ev.Final.Y)
	case tetris.LineClearEvent:
		return fmt.Sprintf("%6d  %s  %d rows %v", ev.Tick, ev.Kind(), ev.Lines, ev.Rows)
	case tetris.GameOverEvent:
		return fmt.Sprintf("%6d  %s", ev.Tick, ev.Kind())
	}
	return ev.Kind().String()
}

func runSim(cmd *cobra.Command, _ []string) error {
	kinds, err := parseTraceKinds(flagSimTrace)
	if err != nil {
		return err
	}

	useConfigFor("tetris")
	tc, err := config.LoadTetris(flagConfig)
	if err != nil {
		logger.Warn("using default tetris config", "err", err)
		tc = config.DefaultTetrisConfig()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ecfg := tetris.DefaultEngineConfig()
	ecfg.Width = tc.Board.Width
	ecfg.Height = tc.Board.Height
	if flagSimWidth > 0 {
		ecfg.Width = flagSimWidth
	}
	if flagSimHeight > 0 {
		ecfg.Height = flagSimHeight
	}
	ecfg.BufferSize = tc.Buffer.Size
	ecfg.Seed = seed
	ecfg.Logger = logger

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	var trace func(tetris.Event)
	if len(kinds) > 0 {
		trace = func(ev tetris.Event) {
			if kinds[ev.Kind()] {
				fmt.Fprintln(out, describeEvent(ev))
			}
		}
	}

	res, err := tetris.Simulate(ctx, tetris.SimConfig{
		Engine:     ecfg,
		Ticks:      flagSimTicks,
		DropEvery:  flagSimDropEvery,
		PolicySeed: seed,
	}, trace)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("sim: %w", err)
	}

	printSimResult(out, seed, res)

	if flagSimSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runID, err := store.SaveRun(storage.RunRecord{
			GameID:   "tetris",
			Seed:     seed,
			Ticks:    res.Ticks,
			Score:    res.Lines,
			GameOver: res.GameOver,
			Board:    res.Board.String(),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Run:       %s\n", runID)
	}
	return nil
}

func printSimResult(out io.Writer, seed int64, res tetris.SimResult) {
	var b strings.Builder
	for _, row := range res.Board {
		b.WriteString("  |")
		for _, c := range row {
			if c != 0 {
				b.WriteString("[]")
			} else {
				b.WriteString(" .")
			}
		}
		b.WriteString("|\n")
	}
	if len(res.Board) > 0 {
		b.WriteString("  +" + strings.Repeat("--", len(res.Board[0])) + "+\n")
	}
	fmt.Fprint(out, b.String())

	fmt.Fprintf(out, "Seed:      %d\n", seed)
	fmt.Fprintf(out, "Ticks:     %d\n", res.Ticks)
	fmt.Fprintf(out, "Pieces:    %d\n", res.Pieces)
	fmt.Fprintf(out, "Lines:     %d\n", res.Lines)
	fmt.Fprintf(out, "Game over: %t\n", res.GameOver)
}
