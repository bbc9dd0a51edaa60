package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okaneco/posterust/internal/domain"
	"github.com/okaneco/posterust/internal/infra/colorspace"
	"github.com/okaneco/posterust/internal/infra/imagecodec"
	"github.com/okaneco/posterust/internal/infra/logger"
	"github.com/okaneco/posterust/internal/infra/preset"
	"github.com/okaneco/posterust/internal/infra/reportstore"
	"github.com/okaneco/posterust/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	values      []int
	numSteps    int
	keep        bool
	colors      []string
	ext         string
	output      string
	auto        int
	presetName  string
	presetsFile string
	report      string
	debug       bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:          "posterust [flags] FILE...",
		Short:        "Posterize photographs into a small set of brightness levels",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(logger.Config{Debug: opts.debug})
			return runPosterize(cmd.Context(), args, opts)
		},
	}

	f := cmd.Flags()
	f.IntSliceVarP(&opts.values, "values", "v", nil, "comma-separated ascending levels 0-10, e.g. 2,5,9")
	f.IntVarP(&opts.numSteps, "num-steps", "n", 0, "even split into this many steps (2-11); excludes -v")
	f.BoolVarP(&opts.keep, "keep", "k", false, "re-space surviving buckets evenly (explicit mode only)")
	f.StringSliceVarP(&opts.colors, "colors", "c", nil, "hex colors replacing greyscale, one per level")
	f.StringVarP(&opts.ext, "ext", "e", "", "output extension (jpg|png|bmp|tif); defaults to the input's")
	f.StringVarP(&opts.output, "output", "o", "", "output path (single input) or name suffix (batch)")
	f.IntVarP(&opts.auto, "auto", "a", 0, "derive this many levels from the first image's luma distribution")
	f.StringVar(&opts.presetName, "preset", "", "named preset from the presets file")
	f.StringVar(&opts.presetsFile, "presets-file", "presets.yaml", "YAML file holding presets")
	f.StringVar(&opts.report, "report", "", "write a JSON batch report to this path")
	f.BoolVarP(&opts.debug, "debug", "d", false, "print the resolved configuration and skip image output")

	cmd.AddCommand(levelsCmd(), paletteCmd(), pickCmd(), versionCmd())
	return cmd
}

func runPosterize(ctx context.Context, files []string, opts rootOptions) error {
	codec := imagecodec.New()

	sel, colors, err := resolveSelection(ctx, files, opts, codec)
	if err != nil {
		return err
	}

	if opts.debug {
		printSelection(os.Stdout, sel, colors)
		return nil
	}

	return executeBatch(ctx, files, sel, colors, opts.output, opts.ext, opts.report)
}

// executeBatch runs the posterizer over the files and reflects any per-file
// failure in the exit status.
func executeBatch(ctx context.Context, files []string, sel domain.Selection, colors domain.ColorTable, output, ext, reportPath string) error {
	codec := imagecodec.New()
	uc := usecase.NewPosterize(codec, codec, colorspace.Luma, logger.L())
	report, err := uc.Execute(ctx, usecase.Request{
		Inputs:    files,
		Selection: sel,
		Colors:    colors,
		Output:    output,
		Ext:       ext,
	})
	if err != nil {
		return err
	}

	if reportPath != "" {
		store := reportstore.NewJSONStore(reportPath)
		if path, serr := store.SaveReport(report); serr != nil {
			logger.L().Warn("report.save_failed", "err", serr)
		} else {
			logger.L().Info("report.saved", "path", path)
		}
	}

	if fails := report.Failures(); fails > 0 {
		return fmt.Errorf("run failed (%d of %d file(s))", fails, len(report.Results))
	}
	return nil
}

// resolveSelection turns flags, presets, and auto mode into one validated
// Selection + ColorTable. Conflicts surface before any image work starts,
// except auto mode which must decode its sample image first.
func resolveSelection(ctx context.Context, files []string, opts rootOptions, codec *imagecodec.Codec) (domain.Selection, domain.ColorTable, error) {
	explicitFlags := len(opts.values) > 0 || opts.numSteps > 0

	if opts.presetName != "" {
		if explicitFlags || opts.auto > 0 {
			return domain.Selection{}, nil, &domain.OpError{
				Op:   "cli.resolve",
				Kind: domain.KindConflictingMode,
				Err:  fmt.Errorf("--preset cannot combine with -v, -n, or --auto"),
			}
		}
		p, err := preset.NewLoader().LoadPreset(opts.presetsFile, opts.presetName)
		if err != nil {
			return domain.Selection{}, nil, err
		}
		if len(opts.colors) > 0 {
			p.Colors = opts.colors
		}
		return p.Resolve()
	}

	colors, err := domain.ParseColorTable(opts.colors)
	if err != nil {
		return domain.Selection{}, nil, err
	}

	if opts.auto > 0 {
		if explicitFlags {
			return domain.Selection{}, nil, &domain.OpError{
				Op:   "cli.resolve",
				Kind: domain.KindConflictingMode,
				Err:  fmt.Errorf("--auto cannot combine with -v or -n"),
			}
		}
		levels, err := usecase.NewAutoLevels(codec, colorspace.Luma).Execute(ctx, files[0], opts.auto)
		if err != nil {
			return domain.Selection{}, nil, err
		}
		sel := domain.Selection{Mode: domain.ModeExplicit, Levels: levels, Keep: opts.keep}
		if err := domain.ValidateColors(sel, colors); err != nil {
			return domain.Selection{}, nil, err
		}
		return sel, colors, nil
	}

	split := opts.numSteps
	// Colors alone pick an even split of matching size.
	if !explicitFlags && len(colors) > 0 {
		split = len(colors)
	}

	sel, err := domain.NewSelection(opts.values, split, opts.keep)
	if err != nil {
		return domain.Selection{}, nil, err
	}
	if err := domain.ValidateColors(sel, colors); err != nil {
		return domain.Selection{}, nil, err
	}
	return sel, colors, nil
}
