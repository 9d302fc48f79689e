package main

import (
	"fmt"

	"cgol-verify/internal/core"
	"cgol-verify/internal/pattern"

	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	var (
		rows, cols int
		seed       int64
		density    float64
	)
	cmd := &cobra.Command{
		Use:   "gen <out>",
		Short: "Write a random pattern file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if density < 0 || density > 1 {
				return fmt.Errorf("density %v outside [0,1]", density)
			}
			g, err := core.RandomGrid(rows, cols, seed, density)
			if err != nil {
				return err
			}
			if err := pattern.WriteFile(args[0], &g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d population %d\n", args[0], rows, cols, g.Population())
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 64, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 64, "grid columns")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&density, "density", 0.3, "probability that a cell starts alive")
	return cmd
}
