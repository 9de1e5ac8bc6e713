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
	"math"
	"sync"
)

// distanceFunc returns the perceptual distance between two packed colors.
// It is symmetric, identical colors have distance 0, and black and opaque
// white are about 255 apart. The buffered variants round each channel
// difference down to an even magnitude first.
type distanceFunc func(a, b uint32, lumaWeight float64) float64

// distYCbCr converts the channel differences to YCbCr and returns the
// Euclidean length of the result. The conversion is linear, so the
// differences are taken first. Division by 255 is skipped to keep the range
// close to that of the channels themselves.
func distYCbCr(p1, p2 uint32, lumaWeight float64) float64 {
	rDiff := float64(int(red(p1)) - int(red(p2)))
	gDiff := float64(int(green(p1)) - int(green(p2)))
	bDiff := float64(int(blue(p1)) - int(blue(p2)))
	return ycbcrLength(rDiff, gDiff, bDiff, lumaWeight)
}

func ycbcrLength(rDiff, gDiff, bDiff, lumaWeight float64) float64 {
	// Conversions around products prevent fused multiply-add, which would
	// change the low bits on some architectures.
	y := float64(KR*rDiff) + float64(KG*gDiff) + float64(KB*bDiff)
	cb := scaleCb * (bDiff - y)
	cr := scaleCr * (rDiff - y)
	ly := lumaWeight * y
	return math.Sqrt(float64(ly*ly) + float64(cb*cb) + float64(cr*cr))
}

// distTable maps halved channel differences to YCbCr distances.
// Index bits 16..23, 8..15 and 0..7 hold diff/2 for red, green and blue,
// truncated toward zero and stored as a two's complement byte. The table has
// 1<<24 entries and is built on first use.
var distTable = sync.OnceValue(func() []float32 {
	table := make([]float32, 1<<24)
	for i := range table {
		rDiff := float64(int(int8(i>>16)) * 2)
		gDiff := float64(int(int8(i>>8)) * 2)
		bDiff := float64(int(int8(i)) * 2)
		table[i] = float32(ycbcrLength(rDiff, gDiff, bDiff, 1))
	}
	return table
})

// distYCbCrBuffered is distYCbCr with unit luma weight, read from distTable.
// Odd differences lose their lowest bit. Truncation toward zero keeps the
// result symmetric in its arguments and 0 for identical colors.
func distYCbCrBuffered(p1, p2 uint32) float64 {
	rDiff := int(red(p1)) - int(red(p2))
	gDiff := int(green(p1)) - int(green(p2))
	bDiff := int(blue(p1)) - int(blue(p2))
	idx := int(uint8(int8(rDiff/2)))<<16 | int(uint8(int8(gDiff/2)))<<8 | int(uint8(int8(bDiff/2)))
	return float64(distTable()[idx])
}

func distRGB(p1, p2 uint32, _ float64) float64 {
	return distYCbCrBuffered(p1, p2)
}

func distARGB(p1, p2 uint32, _ float64) float64 {
	return alphaDistance(p1, p2, distYCbCrBuffered(p1, p2))
}

func distARGBUnbuffered(p1, p2 uint32, lumaWeight float64) float64 {
	return alphaDistance(p1, p2, distYCbCr(p1, p2, lumaWeight))
}

// alphaDistance folds the alpha difference into the color distance d:
// equal alpha a scales d by a, and a fully transparent pixel is 255*a away
// from any pixel with alpha a.
func alphaDistance(p1, p2 uint32, d float64) float64 {
	a1 := float64(alpha(p1)) / 255
	a2 := float64(alpha(p2)) / 255
	if a1 < a2 {
		return float64(a1*d) + float64(255*(a2-a1))
	}
	return float64(a2*d) + float64(255*(a1-a2))
}

func distanceFor(format ColorFormat) distanceFunc {
	switch format {
	case ARGB:
		return distARGB
	case ARGBUnbuffered:
		return distARGBUnbuffered
	default:
		return distRGB
	}
}

// EqualColor reports whether a and b are closer than tolerance under the
// distance metric of format. This is the "effectively equal" test the
// classifier applies to neighbor pairs.
func EqualColor(a, b uint32, format ColorFormat, luminanceWeight, tolerance float64) bool {
	return distanceFor(format)(a, b, luminanceWeight) < tolerance
}
