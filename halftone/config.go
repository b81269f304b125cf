package halftone

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidGridSize is returned for grid sizes outside [1, MaxGridSize].
	ErrInvalidGridSize = errors.New("grid size out of range")
	// ErrInvalidGamma is returned for gammas that are not finite and positive.
	ErrInvalidGamma = errors.New("gamma must be a positive finite number")
)

// MaxGridSize bounds the cells per pixel along each axis so that a block area
// fits the 32-bit density scale.
const MaxGridSize = 4096

// maxRaw is the largest darkness*alpha product of 8-bit channels.
const maxRaw = 255 * 255

// Config describes one halftone conversion.
type Config struct {
	// GridSize is the number of cells per pixel along each axis.
	GridSize int
	// Gamma is the exponent applied to the normalized pixel darkness.
	Gamma float64
}

// NewConfig validates gridSize and gamma.
func NewConfig(gridSize int, gamma float64) (Config, error) {
	c := Config{GridSize: gridSize, Gamma: gamma}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports whether c can be used for a scan.
func (c Config) Validate() error {
	if err := validateGridSize(c.GridSize); err != nil {
		return err
	}
	if !(c.Gamma > 0) || math.IsInf(c.Gamma, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidGamma, c.Gamma)
	}
	return nil
}

func validateGridSize(n int) error {
	if n < 1 || n > MaxGridSize {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidGridSize, n, MaxGridSize)
	}
	return nil
}

// BlockArea is the number of cells in one pixel block.
func (c Config) BlockArea() int { return c.GridSize * c.GridSize }

// Ink returns how many cells of the pixel's block are filled.
func (c Config) Ink(p Pixel) int {
	return inkFor(p, Power(c.Gamma), uint32(c.BlockArea()))
}

func inkFor(p Pixel, curve Curve, area uint32) int {
	raw := uint32(p.Darkness) * uint32(p.Alpha)
	return int(MapDensity(raw, curve, maxRaw, area))
}
