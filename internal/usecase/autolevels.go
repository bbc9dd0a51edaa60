package usecase

import (
	"context"
	"fmt"
	"image"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/okaneco/posterust/internal/domain"
	"github.com/okaneco/posterust/internal/ports"
)

// autoSampleBudget bounds how many pixels feed the luma distribution.
const autoSampleBudget = 50000

// AutoLevels derives an explicit LevelSet from an image's luma distribution:
// n empirical quantile cut points, each snapped to the nearest canonical
// level. Dense shadows or highlights can collapse onto the same level, so
// the result may hold fewer than n levels.
type AutoLevels struct {
	decoder ports.ImageDecoder
	luma    domain.LumaFunc
}

func NewAutoLevels(dec ports.ImageDecoder, luma domain.LumaFunc) *AutoLevels {
	return &AutoLevels{decoder: dec, luma: luma}
}

func (uc *AutoLevels) Execute(ctx context.Context, path string, n int) (domain.LevelSet, error) {
	if n < domain.MinSplit || n > domain.MaxSplit {
		return nil, &domain.OpError{
			Op:   "autolevels",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("auto level count %d outside [%d,%d]", n, domain.MinSplit, domain.MaxSplit),
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := uc.decoder.Decode(path)
	if err != nil {
		return nil, err
	}
	return uc.fromImage(img, n)
}

func (uc *AutoLevels) fromImage(img image.Image, n int) (domain.LevelSet, error) {
	samples := sampleLumas(img, uc.luma)
	if len(samples) == 0 {
		return nil, &domain.OpError{
			Op:   "autolevels",
			Kind: domain.KindDecode,
			Err:  fmt.Errorf("image has no opaque pixels to sample"),
		}
	}
	sort.Float64s(samples)

	const bucket = 255 / domain.GridSteps
	levels := make([]int, 0, n)
	for i := 0; i < n; i++ {
		// Bucket midpoints of the distribution, not extremes, so a single
		// outlier pixel cannot claim a level.
		p := (2*float64(i) + 1) / (2 * float64(n))
		q := stat.Quantile(p, stat.Empirical, samples, nil)
		lvl := int(math.Round(q / bucket))
		if lvl < domain.MinLevel {
			lvl = domain.MinLevel
		}
		if lvl > domain.MaxLevel {
			lvl = domain.MaxLevel
		}
		if len(levels) == 0 || levels[len(levels)-1] != lvl {
			levels = append(levels, lvl)
		}
	}
	return domain.NewLevelSet(levels)
}

func sampleLumas(img image.Image, luma domain.LumaFunc) []float64 {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	step := 1
	if width*height > autoSampleBudget {
		step = int(math.Sqrt(float64(width*height)/float64(autoSampleBudget))) + 1
	}

	out := make([]float64, 0, min(width*height, autoSampleBudget))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			out = append(out, float64(luma(uint8(r16>>8), uint8(g16>>8), uint8(b16>>8))))
		}
	}
	return out
}
