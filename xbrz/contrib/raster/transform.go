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

// Rotate90 returns a copy of img turned 90 degrees clockwise.
func (img *Image) Rotate90() *Image {
	out := NewImage(img.height, img.width)
	for y := range img.height {
		row := img.Row(y)
		for x, p := range row {
			out.data[x*out.width+(img.height-1-y)] = p
		}
	}
	return out
}

// Rotate180 returns a copy of img turned upside down.
func (img *Image) Rotate180() *Image {
	out := NewImage(img.width, img.height)
	n := len(img.data)
	for i, p := range img.data {
		out.data[n-1-i] = p
	}
	return out
}

// Rotate270 returns a copy of img turned 90 degrees counter-clockwise.
func (img *Image) Rotate270() *Image {
	out := NewImage(img.height, img.width)
	for y := range img.height {
		row := img.Row(y)
		for x, p := range row {
			out.data[(img.width-1-x)*out.width+y] = p
		}
	}
	return out
}

// FlipHorizontal returns a copy of img mirrored left to right.
func (img *Image) FlipHorizontal() *Image {
	out := NewImage(img.width, img.height)
	for y := range img.height {
		src := img.Row(y)
		dst := out.Row(y)
		for x, p := range src {
			dst[img.width-1-x] = p
		}
	}
	return out
}
