package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gemcascade/internal/core"
	"github.com/vovakirdan/gemcascade/internal/platform/console"
	"github.com/vovakirdan/gemcascade/internal/registry"
	"github.com/vovakirdan/gemcascade/internal/storage"
)

var (
	flagMoves      int
	flagLayout     string
	flagBoard      bool
	flagThink      time.Duration
	flagStageDelay time.Duration
	flagNoColor    bool
	flagRecord     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <variant>",
	Short: "Play a simulated session",
	Long: `Play a session with the built-in autoplayer on a virtual clock.

The autoplayer takes the move that clears the most cells, using color bombs
when they pay off. Each move takes --think of virtual time and each cascade
stage takes --stage-delay, so Rush sessions run out of time as they would for
a player. The same seed always produces the same session.

Examples:
  gemcascade sim rush --seed 7
  gemcascade sim endless --moves 200
  gemcascade sim rush_tap --board --difficulty easy
  gemcascade sim endless --layout ./configs/layouts/cross.yaml --board
  gemcascade sim rush --seed 7 --record`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	defaults := console.DefaultRunnerConfig()
	simCmd.Flags().IntVar(&flagMoves, "moves", defaults.MaxMoves, "Stop after this many moves (0 = until the session ends)")
	simCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a fixed starting layout YAML")
	simCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the board after every move")
	simCmd.Flags().DurationVar(&flagThink, "think", defaults.ThinkTime, "Virtual time spent before each move")
	simCmd.Flags().DurationVar(&flagStageDelay, "stage-delay", defaults.StageDelay, "Virtual time each cascade stage takes")
	simCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored board output")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run summary in the run database (--db)")
}

func runSim(cmd *cobra.Command, args []string) error {
	variantID := args[0]
	if !registry.Exists(variantID) {
		return fmt.Errorf("unknown variant %q, run 'gemcascade list' to see available variants", variantID)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	if flagSeed != 0 {
		rc.Seed = flagSeed
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	rc.ConfigPath = flagConfig
	rc.Difficulty = flagDifficulty
	rc.LayoutPath = flagLayout
	seed := rc.Seed

	game, err := registry.Create(variantID)
	if err != nil {
		return err
	}
	if err := game.Reset(rc, logger); err != nil {
		return err
	}

	rcfg := console.DefaultRunnerConfig()
	rcfg.MaxMoves = flagMoves
	rcfg.ThinkTime = flagThink
	rcfg.StageDelay = flagStageDelay
	rcfg.ShowBoard = flagBoard
	rcfg.Styled = !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))

	runner, err := console.NewRunner(game, rcfg, logger, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := runner.Run(ctx)
	fmt.Printf("%s (seed %d)\n", game.Title(), seed)
	console.WriteSummary(os.Stdout, sum)
	if err != nil {
		return err
	}

	if flagRecord {
		saveRun(logger, sum, seed)
	}
	return nil
}

// saveRun records a finished run. Storage problems are logged, not fatal.
func saveRun(logger *log.Logger, sum console.Summary, seed int64) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return
	}
	defer store.Close()

	best, err := store.HighScore(sum.Variant)
	if err != nil {
		logger.Warn("could not read high score", "error", err)
	}
	if _, err := store.SaveRun(storage.RunRecord{
		RunID:   sum.RunID,
		Variant: sum.Variant,
		Layout:  sum.Layout,
		Seed:    seed,
		Score:   sum.Score,
		Moves:   sum.Moves,
		Reason:  sum.Reason,
		Elapsed: sum.Elapsed,
	}); err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	if sum.Score > best {
		fmt.Printf("New best score for %s!\n", sum.Variant)
	}
}
