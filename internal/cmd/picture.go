package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/bookpictures/halftone"
	"github.com/Alia5/bookpictures/picture"
	"github.com/Alia5/bookpictures/render"
)

// ToBlackAndWhite writes a grayscale copy of an image.
type ToBlackAndWhite struct {
	SourcePath string `arg:"" help:"The path to the source picture"`
	TargetPath string `help:"The path for the new picture (default: black_and_white_img.png)"`
}

// Run is called by Kong when the to-black-and-white command is executed.
func (c *ToBlackAndWhite) Run(logger *slog.Logger) error {
	target := targetOr(c.TargetPath, DefaultGrayscaleTarget)

	img, err := picture.Load(c.SourcePath)
	if err != nil {
		return err
	}
	logger.Debug("Read image", "path", c.SourcePath)

	gray := picture.Grayscale(img)
	logger.Debug("Turned image to grayscale")

	if err := picture.Save(target, gray); err != nil {
		return err
	}
	logger.Info("Saved grayscale image", "path", target)
	return nil
}

// ToGridImage renders the halftone grid of an image as black and white cells.
type ToGridImage struct {
	SourcePath string  `arg:"" help:"The path to the source picture"`
	TargetPath string  `help:"The path for the new picture (default: pixel_grid.png)"`
	GridSize   int     `help:"Cells per pixel along each axis" default:"3" env:"BOOKPICTURES_GRID_SIZE"`
	Gamma      float64 `help:"Exponent applied to pixel darkness; below 1 darkens mid-tones" default:"1" env:"BOOKPICTURES_GAMMA"`
	Width      int     `help:"Scale the source down to this many pixels wide first (0 keeps the size)" default:"0"`
	Seed       uint64  `help:"Seed for the cell shuffle (0 picks a random seed)" default:"0"`
}

// Run is called by Kong when the to-grid-image command is executed.
func (c *ToGridImage) Run(logger *slog.Logger) error {
	target := targetOr(c.TargetPath, DefaultGridTarget)
	cfg, err := halftone.NewConfig(c.GridSize, c.Gamma)
	if err != nil {
		return err
	}

	src, err := loadSource(logger, c.SourcePath, c.Width)
	if err != nil {
		return err
	}

	grid := halftone.Synthesize(src, cfg, newRand(c.Seed))
	if err := picture.Save(target, render.Raster(grid)); err != nil {
		return err
	}
	logger.Info("Saved grid image", "path", target, "width", grid.Width, "height", grid.Height, "ink", grid.InkCount())
	return nil
}

// FindDistribution searches the gamma whose ink budget fits a text.
type FindDistribution struct {
	ImgSourcePath  string `arg:"" help:"The path to the source picture"`
	TextSourcePath string `arg:"" help:"The path to the text that should fill the picture"`
	GridSize       int    `help:"Cells per pixel along each axis" default:"3" env:"BOOKPICTURES_GRID_SIZE"`
	Width          int    `help:"Scale the source down to this many pixels wide first (0 keeps the size)" default:"0"`
	MaxIterations  int    `help:"Upper bound on full image scans" default:"64"`
	Format         string `help:"Output format" default:"text" enum:"text,json,yaml,toml"`
}

// DistributionReport is the result of find-distribution.
type DistributionReport struct {
	Gamma      float64 `json:"gamma" yaml:"gamma" toml:"gamma"`
	InkCount   uint64  `json:"inkCount" yaml:"ink_count" toml:"ink_count"`
	Characters uint64  `json:"characters" yaml:"characters" toml:"characters"`
	Error      uint64  `json:"error" yaml:"error" toml:"error"`
	Exact      bool    `json:"exact" yaml:"exact" toml:"exact"`
	Iterations int     `json:"iterations" yaml:"iterations" toml:"iterations"`
}

// Run is called by Kong when the find-distribution command is executed.
func (c *FindDistribution) Run(logger *slog.Logger, out io.Writer) error {
	if _, err := halftone.NewConfig(c.GridSize, 1); err != nil {
		return err
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: got %d", halftone.ErrInvalidIterations, c.MaxIterations)
	}
	src, err := loadSource(logger, c.ImgSourcePath, c.Width)
	if err != nil {
		return err
	}
	chars, err := countChars(c.TextSourcePath, false)
	if err != nil {
		return err
	}
	logger.Debug("Starting calculation of the best gamma", "characters", chars)

	sol, err := halftone.Solve(src, c.GridSize, uint64(chars), halftone.WithMaxIterations(c.MaxIterations))
	if err != nil {
		return err
	}

	report := DistributionReport{
		Gamma:      sol.Gamma,
		InkCount:   sol.InkCount,
		Characters: sol.Target,
		Error:      sol.Error(),
		Exact:      sol.Exact,
		Iterations: sol.Iterations,
	}
	return writeReport(out, c.Format, report, func() string {
		return fmt.Sprintf("The best gamma is: %v and it has an error of: %d", report.Gamma, report.Error)
	})
}
