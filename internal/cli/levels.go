package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/okaneco/posterust/internal/domain"
)

func levelsCmd() *cobra.Command {
	var values []int
	var numSteps int
	var keep bool
	var colors []string

	c := &cobra.Command{
		Use:   "levels",
		Short: "Preview the bucket boundaries and colors for a selection (no images)",
		RunE: func(_ *cobra.Command, _ []string) error {
			table, err := domain.ParseColorTable(colors)
			if err != nil {
				return err
			}

			split := numSteps
			if len(values) == 0 && split == 0 && len(table) > 0 {
				split = len(table)
			}
			sel, err := domain.NewSelection(values, split, keep)
			if err != nil {
				return err
			}
			if err := domain.ValidateColors(sel, table); err != nil {
				return err
			}

			printSelection(os.Stdout, sel, table)
			return nil
		},
	}

	c.Flags().IntSliceVarP(&values, "values", "v", nil, "comma-separated ascending levels 0-10")
	c.Flags().IntVarP(&numSteps, "num-steps", "n", 0, "even split into this many steps (2-11)")
	c.Flags().BoolVarP(&keep, "keep", "k", false, "re-space surviving buckets evenly")
	c.Flags().StringSliceVarP(&colors, "colors", "c", nil, "hex colors, one per level")
	return c
}
