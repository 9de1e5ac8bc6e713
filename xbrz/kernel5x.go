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

var kernel5x = kernel{
	scale:               5,
	lineShallow:         lineShallow5x,
	lineSteep:           lineSteep5x,
	lineSteepAndShallow: lineSteepAndShallow5x,
	lineDiagonal:        lineDiagonal5x,
	corner:              corner5x,
}

func lineShallow5x(col uint32, out *outputMatrix) {
	out.blend(4, 0, col, 1, 4)
	out.blend(3, 2, col, 1, 4)
	out.blend(2, 4, col, 1, 4)
	out.blend(4, 1, col, 3, 4)
	out.blend(3, 3, col, 3, 4)
	out.set(4, 2, col)
	out.set(4, 3, col)
	out.set(4, 4, col)
	out.set(3, 4, col)
}

func lineSteep5x(col uint32, out *outputMatrix) {
	out.blend(0, 4, col, 1, 4)
	out.blend(2, 3, col, 1, 4)
	out.blend(4, 2, col, 1, 4)
	out.blend(1, 4, col, 3, 4)
	out.blend(3, 3, col, 3, 4)
	out.set(2, 4, col)
	out.set(3, 4, col)
	out.set(4, 4, col)
	out.set(4, 3, col)
}

func lineSteepAndShallow5x(col uint32, out *outputMatrix) {
	out.blend(0, 4, col, 1, 4)
	out.blend(2, 3, col, 1, 4)
	out.blend(1, 4, col, 3, 4)
	out.blend(4, 0, col, 1, 4)
	out.blend(3, 2, col, 1, 4)
	out.blend(4, 1, col, 3, 4)
	out.blend(3, 3, col, 2, 3)
	out.set(2, 4, col)
	out.set(3, 4, col)
	out.set(4, 4, col)
	out.set(4, 2, col)
	out.set(4, 3, col)
}

// lineDiagonal5x overlaps with the neighboring rotations at this odd scale.
func lineDiagonal5x(col uint32, out *outputMatrix) {
	out.blend(4, 2, col, 1, 8)
	out.blend(3, 3, col, 1, 8)
	out.blend(2, 4, col, 1, 8)
	out.blend(4, 3, col, 7, 8)
	out.blend(3, 4, col, 7, 8)
	out.set(4, 4, col)
}

// corner5x leaves out the 1/64 contributions at (4, 2) and (2, 4); they are
// negligible and would collide with the neighboring rotations.
func corner5x(col uint32, out *outputMatrix) {
	out.blend(4, 4, col, 86, cornerDenom)
	out.blend(4, 3, col, 23, cornerDenom)
	out.blend(3, 4, col, 23, cornerDenom)
}
