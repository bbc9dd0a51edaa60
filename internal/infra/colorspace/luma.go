// Package colorspace is the color-space collaborator: deterministic,
// standard-weighted RGB to luma conversion.
package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// linear caches the sRGB-to-linear transfer for every 8-bit value so the
// per-pixel path never re-derives it.
var linear [256]float64

func init() {
	for i := range linear {
		v := float64(i) / 255.0
		l, _, _ := colorful.Color{R: v, G: v, B: v}.LinearRgb()
		linear[i] = l
	}
}

// Luma converts an sRGB pixel to 8-bit luma: relative luminance computed in
// linear light with Rec. 709 weights, re-encoded through the sRGB transfer
// curve. Grey inputs round-trip exactly, which keeps a second posterization
// pass a no-op.
func Luma(r, g, b uint8) uint8 {
	y := 0.2126*linear[r] + 0.7152*linear[g] + 0.0722*linear[b]
	enc := colorful.LinearRgb(y, y, y).R
	if enc < 0 {
		enc = 0
	} else if enc > 1 {
		enc = 1
	}
	return uint8(math.Round(enc * 255.0))
}
