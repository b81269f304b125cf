package cmd

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Alia5/bookpictures/fileio"
	"github.com/Alia5/bookpictures/halftone"
	"github.com/Alia5/bookpictures/picture"
	"github.com/Alia5/bookpictures/render"
)

// ErrFormatMismatch is returned when --format contradicts the target extension.
var ErrFormatMismatch = errors.New("output format does not match target extension")

// CreateCustomImage pours a text into the halftone grid of an image.
type CreateCustomImage struct {
	ImgSourcePath  string  `arg:"" help:"The path to the source picture"`
	TextSourcePath string  `arg:"" help:"The path to the text placed into the ink cells"`
	TargetPath     string  `help:"The path for the new picture (default: custom-image.svg, custom-image.png with --format=png)"`
	GridSize       int     `help:"Cells per pixel along each axis" default:"3" env:"BOOKPICTURES_GRID_SIZE"`
	Gamma          float64 `help:"Exponent applied to pixel darkness; ignored with --fit" default:"1" env:"BOOKPICTURES_GAMMA"`
	Fit            bool    `help:"Search the gamma that gives every character of the text a cell"`
	Width          int     `help:"Scale the source down to this many pixels wide first (0 keeps the size)" default:"0"`
	Format         string  `help:"Output format; auto picks by target extension" default:"auto" enum:"auto,svg,png"`
	CellSize       int     `help:"Pixels per cell in the output (0 uses the format default)" default:"0"`
	Seed           uint64  `help:"Seed for the cell shuffle (0 picks a random seed)" default:"0"`
}

// Run is called by Kong when the create-custom-image command is executed.
func (c *CreateCustomImage) Run(logger *slog.Logger) error {
	format, target, err := resolveOutput(c.Format, c.TargetPath)
	if err != nil {
		return err
	}
	cfg, err := halftone.NewConfig(c.GridSize, c.Gamma)
	if err != nil {
		return err
	}

	src, err := loadSource(logger, c.ImgSourcePath, c.Width)
	if err != nil {
		return err
	}
	raw, err := fileio.ReadFile(c.TextSourcePath)
	if err != nil {
		return err
	}
	text := string(raw)
	chars := utf8.RuneCountInString(text)

	if c.Fit {
		sol, err := halftone.Solve(src, cfg.GridSize, uint64(chars))
		if err != nil {
			return err
		}
		cfg.Gamma = sol.Gamma
		logger.Info("Fitted gamma to text", "gamma", sol.Gamma, "characters", chars, "ink", sol.InkCount)
	}

	grid := halftone.Synthesize(src, cfg, newRand(c.Seed))

	var res render.TextResult
	switch format {
	case "png":
		var img *image.Gray
		img, res, err = render.Glyphs(grid, strings.NewReader(text), render.GlyphOptions{CellSize: c.CellSize})
		if err != nil {
			return err
		}
		err = picture.Save(target, img)
	default:
		opts := render.DefaultSVGOptions
		if c.CellSize > 0 {
			opts.CellSize = c.CellSize
		}
		err = fileio.WriteFile(target, func(w io.Writer) error {
			var err error
			res, err = render.SVG(w, grid, strings.NewReader(text), opts)
			return err
		})
	}
	if err != nil {
		return err
	}

	if left := chars - res.Consumed; left > 0 {
		logger.Warn("Text did not fit into the picture", "characters", chars, "left", left, "hint", "lower --gamma or use --fit")
	}
	logger.Info("Saved custom image", "path", target, "format", format, "ink", grid.InkCount(), "characters", res.Consumed)
	return nil
}

// resolveOutput settles the output format and path. An empty target picks the
// default file for the format; a target without extension takes any format.
func resolveOutput(format, target string) (string, string, error) {
	if target == "" {
		if format == "png" {
			return format, DefaultCustomPNGTarget, nil
		}
		return "svg", DefaultCustomImageTarget, nil
	}

	ext := strings.ToLower(filepath.Ext(target))
	var byExt string
	switch ext {
	case ".svg":
		byExt = "svg"
	case ".png":
		byExt = "png"
	case "":
	default:
		return "", "", fmt.Errorf("%w: %s is neither .svg nor .png", ErrFormatMismatch, target)
	}

	switch {
	case format == "auto" && byExt == "":
		return "svg", target, nil
	case format == "auto":
		return byExt, target, nil
	case byExt != "" && byExt != format:
		return "", "", fmt.Errorf("%w: --format=%s with %s", ErrFormatMismatch, format, target)
	}
	return format, target, nil
}
