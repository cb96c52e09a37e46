// Copyright 2018 Axel Wagner
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fbimage provides draw.Image views over mapped frame buffer memory.
package fbimage

import (
	"image"
	"image/color"
)

// RGB is an image of 8 bit per channel pixels without alpha, as used by
// 24 and 32 bpp frame buffers. R, G and B are the byte offsets of each
// channel within a pixel, so both RGB and BGR orderings (with or without
// a padding byte) are covered.
type RGB struct {
	Pix           []byte
	Rect          image.Rectangle
	Stride        int
	BytesPerPixel int
	R, G, B       int
}

func (i *RGB) Bounds() image.Rectangle { return i.Rect }
func (i *RGB) ColorModel() color.Model { return color.RGBAModel }

func (i *RGB) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return color.RGBA{}
	}

	pix := i.Pix[i.PixOffset(x, y):]
	return color.RGBA{
		R: pix[i.R],
		G: pix[i.G],
		B: pix[i.B],
		A: 255,
	}
}

func (i *RGB) Set(x, y int, c color.Color) {
	i.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// SetRGBA stores c, dropping its alpha. Bytes of the pixel that belong to
// no channel are left untouched.
func (i *RGB) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}

	pix := i.Pix[i.PixOffset(x, y):]
	pix[i.R] = c.R
	pix[i.G] = c.G
	pix[i.B] = c.B
}

func (i *RGB) PixOffset(x, y int) int {
	return (y-i.Rect.Min.Y)*i.Stride + (x-i.Rect.Min.X)*i.BytesPerPixel
}
