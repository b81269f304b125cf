package halftone

import (
	"image"
	"image/color"
	"iter"
)

// Pixel is one sample of a grayscale+alpha image. Darkness is 255 minus the
// luminance, so 0 is white and 255 is black.
type Pixel struct {
	X, Y     int
	Darkness uint8
	Alpha    uint8
}

// PixelSource is a re-scannable grid of pixels. Pixels must yield every
// coordinate of the Size rectangle exactly once, in the same order on every
// call.
type PixelSource interface {
	Size() (width, height int)
	Pixels() iter.Seq[Pixel]
}

// ImageSource is a PixelSource backed by planes extracted from an image.
type ImageSource struct {
	width, height int
	darkness      []uint8
	alpha         []uint8
}

// NewImageSource converts img to darkness and alpha planes. Colors are
// un-premultiplied before the luminance is taken so that translucent pixels
// keep their tone and only lose alpha.
func NewImageSource(img image.Image) *ImageSource {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	s := &ImageSource{
		width:    w,
		height:   h,
		darkness: make([]uint8, w*h),
		alpha:    make([]uint8, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			// Same weights as color.GrayModel.
			lum := (19595*uint32(c.R) + 38470*uint32(c.G) + 7471*uint32(c.B) + 1<<15) >> 16
			i := y*w + x
			s.darkness[i] = 255 - uint8(lum)
			s.alpha[i] = c.A
		}
	}
	return s
}

// Size returns the image dimensions.
func (s *ImageSource) Size() (int, int) { return s.width, s.height }

// Pixels walks the image in row-major order.
func (s *ImageSource) Pixels() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for i := range s.darkness {
			p := Pixel{
				X:        i % s.width,
				Y:        i / s.width,
				Darkness: s.darkness[i],
				Alpha:    s.alpha[i],
			}
			if !yield(p) {
				return
			}
		}
	}
}
