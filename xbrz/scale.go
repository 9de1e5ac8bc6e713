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

package xbrz

// Scale magnifies the width x height raster src by factor into dst using
// the default tuning.
//
// src must hold exactly width*height pixels and dst exactly
// width*factor * height*factor; factor must be in [MinScale, MaxScale].
// The buffers must not overlap. On success every pixel of dst has been
// written exactly once. On failure an error wrapping one of the Err*
// sentinels is returned before anything is written.
func Scale(factor int, src, dst []uint32, width, height int, format ColorFormat) error {
	return ScaleWithConfig(factor, src, dst, width, height, format, DefaultConfig())
}

// ScaleWithConfig is Scale with explicit tuning constants.
func ScaleWithConfig(factor int, src, dst []uint32, width, height int, format ColorFormat, cfg Config) error {
	return ScaleRows(factor, src, dst, width, height, format, cfg, 0, height)
}

// ScaleRows scales only the source rows [yFirst, yLast), clamped to the
// image, writing the matching factor*(yLast-yFirst) destination rows.
// The bytes produced are identical to the same rows of a full Scale, so
// callers may split an image into disjoint bands and run them concurrently.
// Buffer sizes are validated against the whole image.
func ScaleRows(factor int, src, dst []uint32, width, height int, format ColorFormat, cfg Config, yFirst, yLast int) error {
	if err := validate(factor, src, dst, width, height, format, cfg); err != nil {
		return err
	}
	newScaler(factor, format, cfg).scaleRows(src, dst, width, height, yFirst, yLast)
	return nil
}

// scaler binds a kernel to the distance metric and blend math of a format.
// It is read-only after construction and safe for concurrent use.
type scaler struct {
	classifier
	kernel *kernel
	grad   gradientFunc
}

func newScaler(factor int, format ColorFormat, cfg Config) *scaler {
	return &scaler{
		classifier: classifier{dist: distanceFor(format), cfg: cfg},
		kernel:     kernelFor(factor),
		grad:       gradientFor(format),
	}
}

// scaleRows is the engine proper. Inputs are assumed valid.
//
// Each corner is classified once, from the pixel to its top-left. The
// results are distributed to the four pixels sharing the corner through
// preProc, so by the time pixel (x, y) is visited all four of its corners
// are known.
func (s *scaler) scaleRows(src, dst []uint32, width, height, yFirst, yLast int) {
	yFirst = max(yFirst, 0)
	yLast = min(yLast, height)
	if yFirst >= yLast || width <= 0 {
		return
	}

	n := s.kernel.scale
	dstWidth := width * n
	preProc := make([]blendInfo, width)
	var ker kernel4x4

	// Seed the top corners of the first row from the row above it. Adjacent
	// bands recompute this instead of sharing it.
	if yFirst > 0 {
		y := yFirst - 1
		for x := range width {
			sampleWindow(src, width, height, x, y, &ker)
			res := s.preProcessCorners(&ker)
			preProc[x].setTopR(res.j)
			if x+1 < width {
				preProc[x+1].setTopL(res.k)
			}
		}
	}

	out := outputMatrix{out: dst, stride: dstWidth, n: n, grad: s.grad}
	for y := yFirst; y < yLast; y++ {
		var below blendInfo // corners known so far for (x, y+1)
		for x := range width {
			sampleWindow(src, width, height, x, y, &ker)

			res := s.preProcessCorners(&ker)
			info := preProc[x]
			info.setBottomR(res.f)
			below.setTopR(res.j)
			preProc[x] = below
			below = 0
			below.setTopL(res.k)
			if x+1 < width {
				preProc[x+1].setBottomL(res.g)
			}

			offset := y*n*dstWidth + x*n
			fillBlock(dst, offset, dstWidth, n, ker.f)

			if info != 0 {
				k3 := ker.center()
				out.offset = offset
				for rot := range numRotations {
					s.blendPixel(k3, rot, info, &out)
				}
			}
		}
	}
}

// fillBlock sets the n x n block starting at offset to col.
func fillBlock(dst []uint32, offset, stride, n int, col uint32) {
	for range n {
		row := dst[offset : offset+n]
		for i := range row {
			row[i] = col
		}
		offset += stride
	}
}
