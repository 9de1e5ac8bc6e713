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

import (
	"github.com/go-xbrz/go-xbrz/xbrz/contrib/raster"
	"github.com/go-xbrz/go-xbrz/xbrz/contrib/workerpool"
)

// minBandRows bounds the share of work spent re-classifying the row above
// each band.
const minBandRows = 8

// ScaleParallel is ScaleWithConfig with the source rows split into bands
// that the workers of pool claim one at a time. The result is
// bit-identical to the sequential call. A nil pool runs on the calling
// goroutine.
func ScaleParallel(pool *workerpool.Pool, factor int, src, dst []uint32, width, height int, format ColorFormat, cfg Config) error {
	if err := validate(factor, src, dst, width, height, format, cfg); err != nil {
		return err
	}
	s := newScaler(factor, format, cfg)
	if pool == nil {
		s.scaleRows(src, dst, width, height, 0, height)
		return nil
	}
	band := max(minBandRows, height/(4*pool.NumWorkers()))
	pool.ParallelForBands(height, band, func(start, end int) {
		s.scaleRows(src, dst, width, height, start, end)
	})
	return nil
}

// ScaleImage returns a new image holding img magnified by factor.
// A nil pool scales on the calling goroutine.
func ScaleImage(pool *workerpool.Pool, factor int, img *raster.Image, format ColorFormat) (*raster.Image, error) {
	if img == nil || img.Pix() == nil {
		return nil, ErrNilBuffer
	}
	if err := checkFactor(factor); err != nil {
		return nil, err
	}
	out := raster.NewImage(img.Width()*factor, img.Height()*factor)
	err := ScaleParallel(pool, factor, img.Pix(), out.Pix(), img.Width(), img.Height(), format, DefaultConfig())
	if err != nil {
		return nil, err
	}
	return out, nil
}
