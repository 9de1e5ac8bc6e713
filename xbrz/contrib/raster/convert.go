// Copyright 2025 go-xbrz Authors
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

package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Pack returns the 0xAARRGGBB pixel for the given non-premultiplied channels.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a 0xAARRGGBB pixel into its non-premultiplied channels.
func Unpack(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}

// FromImage converts any image to a packed raster. The source bounds are
// translated so that the result starts at (0, 0).
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
	}
	return fromNRGBA(nrgba)
}

func fromNRGBA(src *image.NRGBA) *Image {
	img := NewImage(src.Rect.Dx(), src.Rect.Dy())
	for y := range img.height {
		row := img.Row(y)
		pix := src.Pix[y*src.Stride:]
		for x := range row {
			i := x * 4
			row[x] = Pack(pix[i], pix[i+1], pix[i+2], pix[i+3])
		}
	}
	return img
}

// ToNRGBA converts the raster to a non-premultiplied Go image.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for y := range img.height {
		row := img.Row(y)
		pix := out.Pix[y*out.Stride:]
		for x, p := range row {
			i := x * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = Unpack(p)
		}
	}
	return out
}
