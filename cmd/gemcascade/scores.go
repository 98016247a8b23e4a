package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemcascade/internal/core"
	"github.com/vovakirdan/gemcascade/internal/registry"
	"github.com/vovakirdan/gemcascade/internal/storage"
)

// maxScoreRows caps --limit.
const maxScoreRows = 100

var (
	flagLimit int
	flagClear bool
	flagRunID string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best recorded runs for a variant",
	Long: `Display the highest scoring runs recorded with 'sim --record' for the
specified variant. Re-run a session with its seed to reproduce it.

Examples:
  gemcascade scores rush
  gemcascade scores endless --limit 20
  gemcascade scores rush --clear
  gemcascade scores --run 0b6e4b9e-2c1d-4f3a-9d61-5a7f0c2e8b14`,
	Args: cobra.RangeArgs(0, 1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show (1-100)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the variant")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its run ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagRunID != "" {
		if len(args) > 0 || flagClear {
			return errors.New("--run takes no variant and cannot be combined with --clear")
		}
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		return showRun(os.Stdout, store, flagRunID)
	}

	if len(args) == 0 {
		return errors.New("a variant is required unless --run is given")
	}
	variantID := args[0]

	game, err := registry.Create(variantID)
	if err != nil {
		return fmt.Errorf("%w, run 'gemcascade list' to see available variants", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return clearScores(os.Stdout, store, game.Title(), variantID)
	}
	return showScores(os.Stdout, store, game.Title(), variantID, flagLimit)
}

func showScores(w io.Writer, store *storage.Store, title, variantID string, limit int) error {
	runs, err := store.TopRuns(variantID, core.Clamp(limit, 1, maxScoreRows))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best Runs - %s\n", title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Run 'gemcascade sim %s --record' to record the first one!\n", variantID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-20s  %-8s  %s\n", "Rank", "Score", "Moves", "Seed", "Stopped", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-20s  %-8s  %s\n", "----", "-----", "-----", "----", "-------", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-20d  %-8s  %s\n",
			i+1, r.Score, r.Moves, r.Seed, r.Reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func showRun(w io.Writer, store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no recorded run with ID %q", runID)
	}

	fmt.Fprintf(w, "Run %s\n", r.RunID)
	fmt.Fprintf(w, "  variant  %s\n", r.Variant)
	if r.Layout != "" {
		fmt.Fprintf(w, "  layout   %s\n", r.Layout)
	}
	fmt.Fprintf(w, "  seed     %d\n", r.Seed)
	fmt.Fprintf(w, "  score    %d\n", r.Score)
	fmt.Fprintf(w, "  moves    %d\n", r.Moves)
	fmt.Fprintf(w, "  stopped  %s\n", r.Reason)
	fmt.Fprintf(w, "  elapsed  %s\n", r.Elapsed)
	fmt.Fprintf(w, "  date     %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func clearScores(w io.Writer, store *storage.Store, title, variantID string) error {
	if err := store.ClearRuns(variantID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared recorded runs - %s\n", title)
	return nil
}
