package ports

import "image"

// ImageDecoder loads raster images from a source (e.g., filesystem).
type ImageDecoder interface {
	Decode(path string) (img image.Image, format string, err error)
}

// ImageEncoder writes raster images; the format is chosen from the path's
// extension.
type ImageEncoder interface {
	Encode(img image.Image, path string) error
}
