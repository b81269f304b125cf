// Package render draws halftone grids as raster images and as text pictures,
// where every ink cell holds the next character of a text.
package render

import (
	"errors"
	"image"
	"image/color"
	"io"
	"unicode"

	"github.com/Alia5/bookpictures/halftone"
)

// Raster draws g one pixel per cell: ink is black, everything else white.
func Raster(g *halftone.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for y, row := range g.Rows() {
		for x, ink := range row {
			if ink {
				img.SetGray(x, y, color.Gray{})
			}
		}
	}
	return img
}

// glyphStream hands out the characters placed into ink cells.
type glyphStream struct {
	r        io.RuneReader
	done     bool
	err      error
	consumed int
}

// next returns the next character of the text, or a space once the text is
// exhausted. Control characters become spaces so that every cell keeps one glyph.
func (s *glyphStream) next() rune {
	if s.done {
		return ' '
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return ' '
	}
	s.consumed++
	if unicode.IsControl(r) {
		return ' '
	}
	return r
}

// line fills buf with the glyphs of one grid row.
func (s *glyphStream) line(buf []rune, row []bool) []rune {
	buf = buf[:0]
	for _, ink := range row {
		if ink {
			buf = append(buf, s.next())
		} else {
			buf = append(buf, ' ')
		}
	}
	return buf
}

// TextResult reports how much of the text a text picture used.
type TextResult struct {
	// Consumed is the number of characters placed into ink cells.
	Consumed int
	// Exhausted is set when the text ran out before the ink cells did.
	Exhausted bool
}

func (s *glyphStream) result() TextResult {
	return TextResult{Consumed: s.consumed, Exhausted: s.done}
}
