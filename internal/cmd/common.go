package cmd

import (
	"log/slog"
	"math/rand/v2"

	"github.com/Alia5/bookpictures/halftone"
	"github.com/Alia5/bookpictures/picture"
)

// Default output paths, used when --target-path is not given.
const (
	DefaultGrayscaleTarget     = "black_and_white_img.png"
	DefaultGridTarget          = "pixel_grid.png"
	DefaultCustomImageTarget   = "custom-image.svg"
	DefaultCustomPNGTarget     = "custom-image.png"
	DefaultStripTarget         = "text_without_whitespaces.txt"
	DefaultReplaceEntersTarget = "text_without_enters.txt"
	DefaultRemoveLinesTarget   = "text_with_lines_removed.txt"
)

func targetOr(path, def string) string {
	if path == "" {
		return def
	}
	return path
}

// loadSource decodes the image at path, optionally narrows it to width pixels,
// and turns it into a halftone pixel source.
func loadSource(logger *slog.Logger, path string, width int) (*halftone.ImageSource, error) {
	img, err := picture.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Read image", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if before := img.Bounds().Dx(); width > 0 && before > width {
		img = picture.FitWidth(img, width)
		logger.Debug("Scaled image", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	}
	return halftone.NewImageSource(img), nil
}

// newRand returns a seeded generator, or nil for a random seed.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
