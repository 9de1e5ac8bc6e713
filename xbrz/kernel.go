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

// blendFunc writes the reconstruction of one corner into the output block.
// col is the color blended in; the block is addressed in the rotated frame
// where the corner being blended is the bottom-right one.
type blendFunc func(col uint32, out *outputMatrix)

// kernel is the reconstruction rule set for one scale factor. Each
// pattern has a fixed sub-pixel geometry derived from where the detected
// edge line crosses the n x n grid.
type kernel struct {
	scale int

	lineShallow         blendFunc // edge at roughly 1:2, running along the bottom
	lineSteep           blendFunc // edge at roughly 2:1, running along the right
	lineSteepAndShallow blendFunc // both at once
	lineDiagonal        blendFunc // 45 degree edge
	corner              blendFunc // isolated corner, rounded
}

// kernelFor returns the kernel for factor, or nil if there is none.
func kernelFor(factor int) *kernel {
	switch factor {
	case 2:
		return &kernel2x
	case 3:
		return &kernel3x
	case 4:
		return &kernel4x
	case 5:
		return &kernel5x
	case 6:
		return &kernel6x
	default:
		return nil
	}
}
