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

// Package raster provides a packed 32-bit ARGB image type and the helpers
// used around the xbrz engine.
//
// An Image stores one uint32 per pixel as 0xAARRGGBB, row-major, with no
// row padding, so Pix can be handed to the scaler directly.
//
// # Usage Example
//
//	img := raster.FromImage(decoded) // any image.Image
//	out := raster.NewImage(img.Width()*4, img.Height()*4)
//	xbrz.Scale(4, img.Pix(), out.Pix(), img.Width(), img.Height(), xbrz.ARGB)
//	png.Encode(w, out.ToNRGBA())
//
// # Edge Handling
//
// At returns 0 outside the image. Clamp maps an out-of-range index to the
// nearest edge, which is the border policy of the scaler.
package raster
