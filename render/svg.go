package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/Alia5/bookpictures/halftone"
)

const lineStyle = `.l {
	font-family: 'Courier New', Courier, monospace;
	font-size: 1px;
	white-space: pre;
	letter-spacing: %gpx;
}`

// SVGOptions controls the text picture document.
type SVGOptions struct {
	// CellSize is the rendered size of one cell in pixels.
	CellSize int
	// LetterSpacing widens the monospace advance so glyphs land on the cell grid.
	LetterSpacing float64
}

// DefaultSVGOptions matches a 1px Courier advance of 0.6px.
var DefaultSVGOptions = SVGOptions{CellSize: 4, LetterSpacing: 0.4}

// SVG writes g as a text picture: one <text> line per grid row, where every
// ink cell shows the next character read from text and every other cell a space.
func SVG(w io.Writer, g *halftone.Grid, text io.RuneReader, opts SVGOptions) (TextResult, error) {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultSVGOptions.CellSize
	}

	canvas := svg.New(w)
	canvas.Start(g.Width*opts.CellSize, g.Height*opts.CellSize,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, g.Width, g.Height),
		`style="background-color:white"`,
	)
	canvas.Style("text/css", fmt.Sprintf(lineStyle, opts.LetterSpacing))

	stream := &glyphStream{r: text}
	buf := make([]rune, 0, g.Width)
	for y, row := range g.Rows() {
		buf = stream.line(buf, row)
		canvas.Text(0, y+1, string(buf), `class="l"`)
	}
	canvas.End()

	if stream.err != nil {
		return stream.result(), fmt.Errorf("read text: %w", stream.err)
	}
	return stream.result(), nil
}
