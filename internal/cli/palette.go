package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okaneco/posterust/internal/infra/imagecodec"
	"github.com/okaneco/posterust/internal/infra/palettizer"
)

func paletteCmd() *cobra.Command {
	var count int
	var method string

	c := &cobra.Command{
		Use:   "palette FILE",
		Short: "Suggest a dark-to-light color palette from an image, ready for -c",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			img, _, err := imagecodec.New().Decode(args[0])
			if err != nil {
				return err
			}

			colors, err := palettizer.New().Extract(img, count, method)
			if err != nil {
				return err
			}

			hexes := make([]string, 0, len(colors))
			for _, c := range colors {
				hexes = append(hexes, c.Hex())
			}
			fmt.Println(strings.Join(hexes, ","))
			return nil
		},
	}

	c.Flags().IntVar(&count, "count", 5, "number of colors to extract (1-11)")
	c.Flags().StringVar(&method, "method", palettizer.MethodDominant, "extraction method: dominant|kmeans")
	return c
}
