package palettizer

import (
	"image"
	"image/color"
	"testing"

	"github.com/okaneco/posterust/internal/domain"
)

func twoToneImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		c := color.RGBA{R: 30, G: 30, B: 30, A: 255}
		if y >= 10 {
			c = color.RGBA{R: 230, G: 230, B: 230, A: 255}
		}
		for x := 0; x < 20; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestExtractRejectsBadSize(t *testing.T) {
	e := New()
	for _, k := range []int{0, -1, 12} {
		if _, err := e.Extract(twoToneImage(), k, MethodKMeans); !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("expected invalid_config for k=%d, got %v", k, err)
		}
	}
}

func TestExtractRejectsUnknownMethod(t *testing.T) {
	_, err := New().Extract(twoToneImage(), 2, "median-cut")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestExtractKMeansTwoTone(t *testing.T) {
	colors, err := New().Extract(twoToneImage(), 2, MethodKMeans)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(colors))
	}
	// Sorted dark to light.
	if colors[0].R >= colors[1].R {
		t.Fatalf("expected darkest first, got %+v", colors)
	}
	if colors[0].R > 80 || colors[1].R < 180 {
		t.Fatalf("cluster centers drifted: %+v", colors)
	}
}

func TestExtractDominantDefaultsWhenMethodEmpty(t *testing.T) {
	colors, err := New().Extract(twoToneImage(), 2, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(colors) == 0 || len(colors) > 2 {
		t.Fatalf("expected 1 or 2 colors, got %d", len(colors))
	}
	for i := 1; i < len(colors); i++ {
		if colors[i-1].R > colors[i].R {
			t.Fatalf("colors not sorted dark to light: %+v", colors)
		}
	}
}

func TestExtractKMeansTooFewSamples(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	if _, err := New().Extract(img, 3, MethodKMeans); err == nil {
		t.Fatalf("expected an error for 1 sample and 3 clusters")
	}
}
