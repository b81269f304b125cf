package picture

import (
	"fmt"
	"image"
	"math"

	"github.com/Alia5/bookpictures/fileio"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// LoadSVG rasterizes the SVG document at path onto a transparent canvas of
// scale times its view box.
func LoadSVG(path string, scale float64) (image.Image, error) {
	f, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fileio.Unreadable(path, fmt.Errorf("parse svg: %w", err))
	}

	w := int(math.Ceil(icon.ViewBox.W * scale))
	h := int(math.Ceil(icon.ViewBox.H * scale))
	if w <= 0 || h <= 0 {
		return nil, fileio.Unreadable(path, fmt.Errorf("empty svg view box %vx%v", icon.ViewBox.W, icon.ViewBox.H))
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
