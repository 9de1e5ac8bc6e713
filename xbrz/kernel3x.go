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

var kernel3x = kernel{
	scale:               3,
	lineShallow:         lineShallow3x,
	lineSteep:           lineSteep3x,
	lineSteepAndShallow: lineSteepAndShallow3x,
	lineDiagonal:        lineDiagonal3x,
	corner:              corner3x,
}

func lineShallow3x(col uint32, out *outputMatrix) {
	out.blend(2, 0, col, 1, 4)
	out.blend(1, 2, col, 1, 4)
	out.blend(2, 1, col, 3, 4)
	out.set(2, 2, col)
}

func lineSteep3x(col uint32, out *outputMatrix) {
	out.blend(0, 2, col, 1, 4)
	out.blend(2, 1, col, 1, 4)
	out.blend(1, 2, col, 3, 4)
	out.set(2, 2, col)
}

func lineSteepAndShallow3x(col uint32, out *outputMatrix) {
	out.blend(2, 0, col, 1, 4)
	out.blend(0, 2, col, 1, 4)
	out.blend(2, 1, col, 3, 4)
	out.blend(1, 2, col, 3, 4)
	out.set(2, 2, col)
}

// lineDiagonal3x overlaps with the neighboring rotations at this odd scale.
func lineDiagonal3x(col uint32, out *outputMatrix) {
	out.blend(1, 2, col, 1, 8)
	out.blend(2, 1, col, 1, 8)
	out.blend(2, 2, col, 7, 8)
}

func corner3x(col uint32, out *outputMatrix) {
	out.blend(2, 2, col, 45, cornerDenom)
}
