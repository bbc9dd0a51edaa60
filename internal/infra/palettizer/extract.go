// Package palettizer suggests output palettes from an image, as a starting
// point for the -c flag.
package palettizer

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/okaneco/posterust/internal/domain"
	"github.com/okaneco/posterust/internal/ports"
)

const (
	MethodDominant = "dominant"
	MethodKMeans   = "kmeans"
)

// maxSamples bounds the pixel count fed to kmeans so large images stay
// tractable.
const maxSamples = 12000

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

var _ ports.PaletteExtractor = (*Extractor)(nil)

// Extract returns up to k colors sorted dark to light.
func (e *Extractor) Extract(img image.Image, k int, method string) ([]domain.RGB, error) {
	if k < 1 || k > domain.GridSteps {
		return nil, &domain.OpError{
			Op:   "palettizer.extract",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("palette size %d outside [1,%d]", k, domain.GridSteps),
		}
	}

	var palette []colorful.Color
	var err error
	switch method {
	case MethodKMeans:
		palette, err = extractKMeans(img, k)
	case MethodDominant, "":
		palette, err = extractDominant(img, k)
	default:
		return nil, &domain.OpError{
			Op:   "palettizer.extract",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown palette method %q (expected dominant|kmeans)", method),
		}
	}
	if err != nil {
		return nil, err
	}

	sortByBrightness(palette)

	out := make([]domain.RGB, 0, len(palette))
	for _, c := range palette {
		r, g, b := c.Clamped().RGB255()
		out = append(out, domain.RGB{R: r, G: g, B: b})
	}
	return out, nil
}

func extractDominant(img image.Image, k int) ([]colorful.Color, error) {
	candidates := dominantcolor.FindWeight(img, max(24, k*8))
	if len(candidates) == 0 {
		return nil, fmt.Errorf("palettizer: no dominant colors found")
	}

	slices.SortFunc(candidates, func(a, b dominantcolor.Color) int {
		if a.Weight > b.Weight {
			return -1
		}
		if a.Weight < b.Weight {
			return 1
		}
		return 0
	})

	out := make([]colorful.Color, 0, k)
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		out = append(out, col.Clamped())
		if len(out) == k {
			break
		}
	}
	return out, nil
}

func extractKMeans(img image.Image, k int) ([]colorful.Color, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("palettizer: empty image")
	}

	// Subsample to keep kmeans tractable on large images.
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) < k {
		return nil, fmt.Errorf("palettizer: %d samples is too few for %d clusters", len(dataset), k)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil || len(cc) == 0 {
		return nil, fmt.Errorf("palettizer: kmeans failed: %w", err)
	}

	// Dominant clusters first so truncation keeps the strongest tones.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	out := make([]colorful.Color, 0, k)
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		out = append(out, colorful.Color{
			R: c.Center[0],
			G: c.Center[1],
			B: c.Center[2],
		}.Clamped())
		if len(out) == k {
			break
		}
	}
	return out, nil
}

// sortByBrightness orders colors darkest to brightest by linear luminance.
func sortByBrightness(palette []colorful.Color) {
	slices.SortFunc(palette, func(a, b colorful.Color) int {
		ri, gi, bi := a.LinearRgb()
		rj, gj, bj := b.LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		if yi < yj {
			return -1
		}
		if yi > yj {
			return 1
		}
		return 0
	})
}
