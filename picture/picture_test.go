package picture_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/bookpictures/fileio"
	th "github.com/Alia5/bookpictures/internal/testing"
	"github.com/Alia5/bookpictures/picture"
)

func TestLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := th.WritePNG(t, dir, "in.png", th.Columns(th.Black, th.White))

	img, err := picture.Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	r, _, _, _ := img.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := picture.Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, fileio.ErrInputNotFound)

	corrupt := th.WriteText(t, dir, "corrupt.png", "not an image")
	_, err = picture.Load(corrupt)
	assert.ErrorIs(t, err, fileio.ErrInputUnreadable)

	_, err = picture.Load(filepath.Join(dir, "missing.svg"))
	assert.ErrorIs(t, err, fileio.ErrInputNotFound)
}

func TestLoadSVG(t *testing.T) {
	dir := t.TempDir()
	path := th.WriteText(t, dir, "in.svg", `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="2" viewBox="0 0 4 2">
<rect x="0" y="0" width="2" height="2" fill="#000000"/>
</svg>`)

	img, err := picture.Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())

	_, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(3, 1).RGBA()
	assert.Zero(t, a)

	big, err := picture.LoadSVG(path, 3)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 6), big.Bounds())
}

func TestGrayscaleKeepsAlpha(t *testing.T) {
	src := th.Columns(color.NRGBA{R: 200, G: 20, B: 90, A: 255}, color.NRGBA{R: 10, G: 250, B: 30, A: 100})

	gray := picture.Grayscale(src)
	require.Equal(t, src.Bounds(), gray.Bounds())
	for x := 0; x < 2; x++ {
		c := gray.NRGBAAt(x, 0)
		assert.Equal(t, c.R, c.G)
		assert.Equal(t, c.G, c.B)
	}
	assert.Equal(t, uint8(255), gray.NRGBAAt(0, 0).A)
	assert.InDelta(t, 100, gray.NRGBAAt(1, 0).A, 1)
}

func TestFitWidth(t *testing.T) {
	src := th.Solid(40, 20, th.Black)

	assert.Same(t, src, picture.FitWidth(src, 0))
	assert.Same(t, src, picture.FitWidth(src, 40))
	assert.Same(t, src, picture.FitWidth(src, 100))

	small := picture.FitWidth(src, 10)
	assert.Equal(t, 10, small.Bounds().Dx())
	assert.Equal(t, 5, small.Bounds().Dy())
}

func TestSaveFormats(t *testing.T) {
	dir := t.TempDir()
	src := th.Solid(6, 3, th.Gray(90))

	for _, name := range []string{"out.png", "out.jpg", "out.JPEG", "out.gif", "out.bmp", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, picture.Save(path, src))

			img, err := picture.Load(path)
			require.NoError(t, err)
			assert.Equal(t, 6, img.Bounds().Dx())
			assert.Equal(t, 3, img.Bounds().Dy())
		})
	}
}

func TestSaveUnsupported(t *testing.T) {
	err := picture.Save(filepath.Join(t.TempDir(), "out.xyz"), th.Solid(1, 1, th.Black))
	assert.ErrorIs(t, err, picture.ErrUnsupportedFormat)
}
