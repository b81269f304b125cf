package render

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Alia5/bookpictures/halftone"
)

// GlyphOptions controls raster text pictures.
type GlyphOptions struct {
	// CellSize is the edge of one cell in pixels.
	CellSize int
}

// DefaultGlyphOptions keeps glyphs legible when zoomed in.
var DefaultGlyphOptions = GlyphOptions{CellSize: 12}

// Glyphs draws the same text picture as SVG into a grayscale raster, one
// CellSize square per cell, using the Go Mono face.
func Glyphs(g *halftone.Grid, text io.RuneReader, opts GlyphOptions) (*image.Gray, TextResult, error) {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultGlyphOptions.CellSize
	}
	face, err := monoFace(opts.CellSize)
	if err != nil {
		return nil, TextResult{}, err
	}
	defer face.Close()

	img := image.NewGray(image.Rect(0, 0, g.Width*opts.CellSize, g.Height*opts.CellSize))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := font.Drawer{Dst: img, Src: image.Black, Face: face}
	m := face.Metrics()
	// Centers the ascent+descent box inside a cell.
	baselineOffset := (fixed.I(opts.CellSize) + m.Ascent - m.Descent) / 2

	stream := &glyphStream{r: text}
	buf := make([]rune, 0, g.Width)
	cell := fixed.I(opts.CellSize)
	for y, row := range g.Rows() {
		buf = stream.line(buf, row)
		baseline := fixed.I(y*opts.CellSize) + baselineOffset
		for x, r := range buf {
			if r == ' ' {
				continue
			}
			adv, ok := face.GlyphAdvance(r)
			if !ok {
				adv = cell
			}
			d.Dot = fixed.Point26_6{
				X: fixed.I(x*opts.CellSize) + (cell-adv)/2,
				Y: baseline,
			}
			d.DrawString(string(r))
		}
	}

	if stream.err != nil {
		return nil, stream.result(), fmt.Errorf("read text: %w", stream.err)
	}
	return img, stream.result(), nil
}

func monoFace(cellSize int) (font.Face, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go mono: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(cellSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("go mono face: %w", err)
	}
	return face, nil
}
