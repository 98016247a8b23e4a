package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/layouts"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <file-or-dir>",
	Short: "Validate and print board layouts",
	Long: `Parse a layout file, or every layout in a directory, and print each
board in the fixture notation: color indexes, 'b' prefix for color bombs and
'.' for cells filled at random.

Examples:
  gemcascade layout ./configs/layouts
  gemcascade layout ./configs/layouts/cross.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func runLayout(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var all []layouts.Layout
	if info.IsDir() {
		if all, err = layouts.NewLoader(path).LoadAll(); err != nil {
			return err
		}
	} else {
		l, err := layouts.LoadFile(path)
		if err != nil {
			return err
		}
		all = append(all, l)
	}

	if len(all) == 0 {
		fmt.Println("No layouts found.")
		return nil
	}
	for _, l := range all {
		fmt.Printf("%s (%dx%d, %d colors)", l.ID, l.Rows, l.Cols, l.Palette)
		if l.Name != "" {
			fmt.Printf(" - %s", l.Name)
		}
		fmt.Println()
		for _, row := range l.Cells {
			for c, cell := range row {
				if c > 0 {
					fmt.Print(" ")
				}
				fmt.Print(cell.String())
			}
			fmt.Println()
		}
		fmt.Println()
	}
	return nil
}
