package ports

import (
	"image"

	"github.com/okaneco/posterust/internal/domain"
)

// PaletteExtractor derives a k-color palette from an image, sorted dark to
// light so it lines up with ascending levels.
type PaletteExtractor interface {
	Extract(img image.Image, k int, method string) ([]domain.RGB, error)
}
