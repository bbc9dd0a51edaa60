package cli

import (
	"github.com/spf13/cobra"

	"github.com/okaneco/posterust/internal/domain"
	"github.com/okaneco/posterust/internal/infra/logger"
	"github.com/okaneco/posterust/internal/infra/preset"
	"github.com/okaneco/posterust/internal/ui/tui"
)

func pickCmd() *cobra.Command {
	var ext string
	var output string
	var report string
	var presetsFile string
	var debug bool

	c := &cobra.Command{
		Use:   "pick FILE...",
		Short: "Pick levels interactively with a live ramp preview, then apply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(logger.Config{Debug: debug})

			// Presets are optional sugar here; a missing file is fine.
			presets, err := preset.NewLoader().ListPresets(presetsFile)
			if err != nil {
				if domain.IsKind(err, domain.KindInvalidConfig) {
					return err
				}
				presets = nil
			}

			result, err := tui.Run(tui.Deps{
				Files:   args,
				Presets: presets,
				Logger:  logger.L(),
			})
			if err != nil {
				return err
			}
			if !result.Apply {
				return nil
			}

			return executeBatch(cmd.Context(), args, result.Selection, result.Colors, output, ext, report)
		},
	}

	c.Flags().StringVarP(&ext, "ext", "e", "", "output extension (jpg|png|bmp|tif); defaults to the input's")
	c.Flags().StringVarP(&output, "output", "o", "", "output path (single input) or name suffix (batch)")
	c.Flags().StringVar(&report, "report", "", "write a JSON batch report to this path")
	c.Flags().StringVar(&presetsFile, "presets-file", "presets.yaml", "YAML file holding presets")
	c.Flags().BoolVarP(&debug, "debug", "d", false, "verbose logging")
	return c
}
