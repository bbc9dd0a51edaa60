// Package imagecodec is the imaging collaborator: filesystem decode/encode
// for JPEG, PNG, BMP and TIFF, with the format picked from the extension.
package imagecodec

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/okaneco/posterust/internal/domain"
	"github.com/okaneco/posterust/internal/ports"
)

// Format identifiers as reported by image.Decode.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// FormatFromPath maps a file extension to a format identifier.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", &domain.OpError{
			Op:   "imagecodec.format",
			Kind: domain.KindUnsupportedFormat,
			Path: path,
		}
	}
}

type Codec struct{}

func New() *Codec { return &Codec{} }

var (
	_ ports.ImageDecoder = (*Codec)(nil)
	_ ports.ImageEncoder = (*Codec)(nil)
)

func (c *Codec) Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &domain.OpError{
			Op:   "imagecodec.decode",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &domain.OpError{
			Op:   "imagecodec.decode",
			Kind: domain.KindDecode,
			Path: path,
			Err:  err,
		}
	}
	return img, format, nil
}

func (c *Codec) Encode(img image.Image, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &domain.OpError{
			Op:   "imagecodec.encode",
			Kind: domain.KindEncode,
			Path: path,
			Err:  err,
		}
	}

	switch format {
	case FormatJPEG:
		err = jpeg.Encode(f, img, nil)
	case FormatPNG:
		err = png.Encode(f, img)
	case FormatBMP:
		err = bmp.Encode(f, img)
	case FormatTIFF:
		err = tiff.Encode(f, img, nil)
	}

	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		// Do not leave a truncated file behind.
		_ = os.Remove(path)
		return &domain.OpError{
			Op:   "imagecodec.encode",
			Kind: domain.KindEncode,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
