// Package gradient draws an animated color gradient directly into a mapped
// Linux frame buffer and measures how fast the frames are written.
package gradient

import (
	"image"
	"image/color"

	"github.com/gokrazy/fbgrad/internal/fb"
	"github.com/gokrazy/fbgrad/internal/fbimage"
)

// A Screen describes the mapped frame buffer region. Red, Green and Blue are
// byte offsets within a pixel.
type Screen struct {
	Size          int
	BytesPerPixel int
	BytesPerLine  int
	Red           int
	Green         int
	Blue          int
	Width         int
	Height        int

	Buffer []byte
}

// NewScreen derives the screen geometry from validated screen info. The
// buffer is not mapped yet.
func NewScreen(finfo fb.FixScreeninfo, vinfo fb.VarScreeninfo) Screen {
	return Screen{
		Size:          int(finfo.Line_length) * int(vinfo.Yres),
		BytesPerPixel: int(vinfo.Bits_per_pixel) / 8,
		BytesPerLine:  int(finfo.Line_length),
		Red:           int(vinfo.Red.Offset) / 8,
		Green:         int(vinfo.Green.Offset) / 8,
		Blue:          int(vinfo.Blue.Offset) / 8,
		Width:         int(vinfo.Xres),
		Height:        int(vinfo.Yres),
	}
}

// Fill draws one animation step: red rises along x, green along y, and blue
// is t everywhere.
func (s *Screen) Fill(t uint8) {
	img := s.Image()
	for y := 0; y < s.Height; y++ {
		g := uint8(y * 255 / s.Height)
		for x := 0; x < s.Width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / s.Width),
				G: g,
				B: t,
				A: 255,
			})
		}
	}
}

// Image returns a draw.Image view of the mapped buffer.
func (s *Screen) Image() *fbimage.RGB {
	return &fbimage.RGB{
		Pix:           s.Buffer,
		Rect:          image.Rect(0, 0, s.Width, s.Height),
		Stride:        s.BytesPerLine,
		BytesPerPixel: s.BytesPerPixel,
		R:             s.Red,
		G:             s.Green,
		B:             s.Blue,
	}
}
