package halftone

import (
	"iter"
	"math/rand/v2"
)

// progressEvery is how many pixels pass between debug progress logs.
const progressEvery = 10_000

// Grid is a boolean halftone raster. Cells are stored row-major; a true cell is ink.
type Grid struct {
	Width     int
	Height    int
	BlockSize int
	cells     []bool
}

// NewGrid returns an empty grid for a width x height pixel image where each
// pixel spans blockSize x blockSize cells.
func NewGrid(width, height, blockSize int) *Grid {
	w, h := width*blockSize, height*blockSize
	return &Grid{
		Width:     w,
		Height:    h,
		BlockSize: blockSize,
		cells:     make([]bool, w*h),
	}
}

// At reports whether the cell at (x, y) is ink.
func (g *Grid) At(x, y int) bool { return g.cells[y*g.Width+x] }

// Set marks the cell at (x, y).
func (g *Grid) Set(x, y int, ink bool) { g.cells[y*g.Width+x] = ink }

// Row returns the cells of row y. The slice aliases the grid.
func (g *Grid) Row(y int) []bool { return g.cells[y*g.Width : (y+1)*g.Width] }

// Rows iterates the grid top to bottom.
func (g *Grid) Rows() iter.Seq2[int, []bool] {
	return func(yield func(int, []bool) bool) {
		for y := 0; y < g.Height; y++ {
			if !yield(y, g.Row(y)) {
				return
			}
		}
	}
}

// InkCount returns the number of ink cells.
func (g *Grid) InkCount() uint64 {
	var n uint64
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// BlockInk returns the number of ink cells in the block of source pixel (px, py).
func (g *Grid) BlockInk(px, py int) int {
	n := 0
	for dy := 0; dy < g.BlockSize; dy++ {
		row := g.Row(py*g.BlockSize + dy)
		for dx := 0; dx < g.BlockSize; dx++ {
			if row[px*g.BlockSize+dx] {
				n++
			}
		}
	}
	return n
}

// NewRand returns a generator seeded from the runtime random source.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Synthesize builds the halftone grid of src. For every pixel it fills
// cfg.Ink(p) cells of the pixel's block, chosen by an independent uniform
// shuffle drawn from rng. A nil rng is replaced by NewRand.
//
// cfg must be valid, see Config.Validate.
func Synthesize(src PixelSource, cfg Config, rng *rand.Rand) *Grid {
	if rng == nil {
		rng = NewRand()
	}
	width, height := src.Size()
	n := cfg.GridSize
	grid := NewGrid(width, height, n)
	curve := Power(cfg.Gamma)
	area := cfg.BlockArea()

	block := make([]bool, area)
	var total uint64
	i := 0
	for p := range src.Pixels() {
		ink := inkFor(p, curve, uint32(area))
		total += uint64(ink)

		for j := range block {
			block[j] = j < ink
		}
		rng.Shuffle(area, func(a, b int) { block[a], block[b] = block[b], block[a] })

		ox, oy := p.X*n, p.Y*n
		for j, filled := range block {
			if filled {
				grid.Set(ox+j%n, oy+j/n, true)
			}
		}

		i++
		if i%progressEvery == 0 {
			logger().Debug("halftone progress", "pixels", i)
		}
	}
	logger().Debug("halftone grid synthesized",
		"width", grid.Width, "height", grid.Height, "gamma", cfg.Gamma, "ink", total)
	return grid
}
