// Package halftone turns grayscale pixel data into a boolean halftone grid.
//
// Every source pixel becomes a GridSize x GridSize block of cells. The darkness
// and alpha of the pixel decide how many cells of its block are "ink"; which
// cells they are is picked by a uniform random shuffle so that equal tones do
// not produce a repeating fill pattern.
//
// The package also searches the gamma exponent that makes the ink budget of an
// image match a given number of text characters, see [Solve].
package halftone
