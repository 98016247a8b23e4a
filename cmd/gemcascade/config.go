package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemcascade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print the configuration a session would use, after the search order
and the --difficulty preset have been applied.

Search order:
  1. --config path
  2. ~/.gemcascade/configs/gemcascade.yaml
  3. ./configs/gemcascade.yaml
  4. embedded defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGemcascade(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyGemcascadePreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", config.Source(flagConfig))
	if flagDifficulty != "" {
		fmt.Printf("# difficulty: %s\n", flagDifficulty)
	}
	fmt.Print(string(data))
	return nil
}
