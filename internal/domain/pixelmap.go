package domain

import (
	"image"
	"image/color"
)

// LumaFunc converts one 8-bit RGB pixel to 8-bit luma. Implementations live
// in the color-space collaborator and must be deterministic.
type LumaFunc func(r, g, b uint8) uint8

// MapImage applies the lookup table to src and returns a new RGBA buffer of
// the same size. It reads only the shared table and writes only its own
// output, so callers may run it concurrently over independent images.
func MapImage(src image.Image, table *LookupTable, luma LumaFunc) *image.RGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	if rgba, ok := src.(*image.RGBA); ok {
		mapRGBA(rgba, dst, table, luma)
		return dst
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out := table[luma(uint8(r>>8), uint8(g>>8), uint8(b>>8))]
			dst.SetRGBA(x, y, color.RGBA{R: out.R, G: out.G, B: out.B, A: 255})
		}
	}
	return dst
}

// mapRGBA is the fast path: straight walks over both Pix slices.
func mapRGBA(src, dst *image.RGBA, table *LookupTable, luma LumaFunc) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	for y := 0; y < h; y++ {
		so := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		do := dst.PixOffset(0, y)
		for x := 0; x < w; x++ {
			out := table[luma(src.Pix[so], src.Pix[so+1], src.Pix[so+2])]
			dst.Pix[do] = out.R
			dst.Pix[do+1] = out.G
			dst.Pix[do+2] = out.B
			dst.Pix[do+3] = 255
			so += 4
			do += 4
		}
	}
}
