// gemcascade is a headless tile-matching puzzle engine with a command-line
// driver for simulated sessions.
//
// Usage:
//
//	gemcascade list                 - List available variants
//	gemcascade sim <variant>        - Play a simulated session
//	gemcascade config               - Show the resolved configuration
//	gemcascade layout <path>        - Validate and print board layouts
//	gemcascade scores <variant>     - Show the best recorded runs
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--db <path>           - Run database (default: ~/.gemcascade/runs.db)
//
// Flag defaults can be set with GEMCASCADE_SEED, GEMCASCADE_CONFIG,
// GEMCASCADE_DIFFICULTY, GEMCASCADE_LOG_LEVEL and GEMCASCADE_DB, also read
// from a .env file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/gemcascade/internal/games/gemcascade"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagDBPath     string
)

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()
	registerGlobalFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemcascade",
	Short: "Gem Cascade - a tile-matching puzzle engine",
	Long: `Gem Cascade runs match-three sessions: swap adjacent tokens to line up
three or more of a color, watch the board cascade, and detonate color bombs.

Available commands:
  list     - Show all variants
  sim      - Play a simulated session with the autoplayer
  config   - Print the resolved configuration
  layout   - Validate fixed board layouts
  scores   - Best recorded runs

Examples:
  gemcascade list
  gemcascade sim rush --seed 42
  gemcascade sim endless --moves 100 --board
  gemcascade config --difficulty hard
  gemcascade layout ./configs/layouts
  gemcascade scores rush`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func registerGlobalFlags() {
	seed, _ := strconv.ParseInt(os.Getenv("GEMCASCADE_SEED"), 10, 64)
	level := os.Getenv("GEMCASCADE_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	dbPath := os.Getenv("GEMCASCADE_DB")
	if dbPath == "" {
		dbPath = "~/.gemcascade/runs.db"
	}

	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("GEMCASCADE_CONFIG"), "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", os.Getenv("GEMCASCADE_DIFFICULTY"), "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", level, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", dbPath, "Path to the run database")
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the CLI logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gemcascade",
		Level:           level,
	})
	return logger, nil
}
