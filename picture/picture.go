// Package picture loads, converts and saves the images fed to the halftone
// pipeline.
package picture

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/Alia5/bookpictures/fileio"
	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // Register WebP decoder.
)

// ErrUnsupportedFormat is returned when no encoder matches the target extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

const jpegQuality = 95

// DefaultSVGScale is the rasterization factor applied to SVG view boxes.
const DefaultSVGScale = 1.0

// Load decodes the image at path. SVG documents are rasterized at
// DefaultSVGScale, see LoadSVG for other scales.
func Load(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return LoadSVG(path, DefaultSVGScale)
	}
	f, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fileio.Unreadable(path, err)
	}
	return img, nil
}

// Grayscale returns a grayscale copy of img. Alpha is kept.
func Grayscale(img image.Image) *image.NRGBA {
	g := gift.New(gift.Grayscale())
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// FitWidth scales img down to width pixels, keeping the aspect ratio.
// Images already narrow enough, and a width of 0, are returned unchanged.
func FitWidth(img image.Image, width int) image.Image {
	if width <= 0 || img.Bounds().Dx() <= width {
		return img
	}
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}

// Save encodes img into path, picking the encoder from the extension.
func Save(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	return fileio.WriteFile(path, func(w io.Writer) error {
		if err := enc(w, img); err != nil {
			return fmt.Errorf("%w: encode %s: %w", fileio.ErrOutputWriteFailed, path, err)
		}
		return nil
	})
}

type encoder func(w io.Writer, img image.Image) error

func encoderFor(path string) (encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
		}, nil
	case ".gif":
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
