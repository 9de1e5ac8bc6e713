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

// Image is a 2D array of packed 0xAARRGGBB pixels.
// Rows are stored back to back; the stride always equals the width.
type Image struct {
	data   []uint32
	width  int
	height int
}

// NewImage creates a new transparent black image with the specified
// dimensions. Non-positive dimensions yield an empty image with nil Pix.
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}
	return &Image{
		data:   make([]uint32, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Pix returns the backing pixel slice.
func (img *Image) Pix() []uint32 {
	return img.data
}

// Row returns a mutable slice for the specified row.
func (img *Image) Row(y int) []uint32 {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.width
	return img.data[start : start+img.width]
}

// At returns the pixel at position (x, y), or 0 when out of bounds.
func (img *Image) At(x, y int) uint32 {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return 0
	}
	return img.data[y*img.width+x]
}

// Set sets the pixel at position (x, y).
func (img *Image) Set(x, y int, value uint32) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.width+x] = value
}

// SameSize returns true if both images have the same dimensions.
func SameSize(a, b *Image) bool {
	return a.width == b.width && a.height == b.height
}

// Fill sets all pixels to the specified value.
func (img *Image) Fill(value uint32) {
	for i := range img.data {
		img.data[i] = value
	}
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}
