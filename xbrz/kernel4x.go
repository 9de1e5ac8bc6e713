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

var kernel4x = kernel{
	scale:               4,
	lineShallow:         lineShallow4x,
	lineSteep:           lineSteep4x,
	lineSteepAndShallow: lineSteepAndShallow4x,
	lineDiagonal:        lineDiagonal4x,
	corner:              corner4x,
}

func lineShallow4x(col uint32, out *outputMatrix) {
	out.blend(3, 0, col, 1, 4)
	out.blend(2, 2, col, 1, 4)
	out.blend(3, 1, col, 3, 4)
	out.blend(2, 3, col, 3, 4)
	out.set(3, 2, col)
	out.set(3, 3, col)
}

func lineSteep4x(col uint32, out *outputMatrix) {
	out.blend(0, 3, col, 1, 4)
	out.blend(2, 2, col, 1, 4)
	out.blend(1, 3, col, 3, 4)
	out.blend(3, 2, col, 3, 4)
	out.set(2, 3, col)
	out.set(3, 3, col)
}

func lineSteepAndShallow4x(col uint32, out *outputMatrix) {
	out.blend(3, 1, col, 3, 4)
	out.blend(1, 3, col, 3, 4)
	out.blend(3, 0, col, 1, 4)
	out.blend(0, 3, col, 1, 4)
	out.blend(2, 2, col, 1, 3) // 1/3 rather than 1/4
	out.set(3, 3, col)
	out.set(3, 2, col)
	out.set(2, 3, col)
}

func lineDiagonal4x(col uint32, out *outputMatrix) {
	out.blend(3, 2, col, 1, 2)
	out.blend(2, 3, col, 1, 2)
	out.set(3, 3, col)
}

func corner4x(col uint32, out *outputMatrix) {
	out.blend(3, 3, col, 68, cornerDenom)
	out.blend(3, 2, col, 9, cornerDenom)
	out.blend(2, 3, col, 9, cornerDenom)
}
