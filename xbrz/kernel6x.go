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

var kernel6x = kernel{
	scale:               6,
	lineShallow:         lineShallow6x,
	lineSteep:           lineSteep6x,
	lineSteepAndShallow: lineSteepAndShallow6x,
	lineDiagonal:        lineDiagonal6x,
	corner:              corner6x,
}

func lineShallow6x(col uint32, out *outputMatrix) {
	out.blend(5, 0, col, 1, 4)
	out.blend(4, 2, col, 1, 4)
	out.blend(3, 4, col, 1, 4)
	out.blend(5, 1, col, 3, 4)
	out.blend(4, 3, col, 3, 4)
	out.blend(3, 5, col, 3, 4)
	out.set(5, 2, col)
	out.set(5, 3, col)
	out.set(5, 4, col)
	out.set(5, 5, col)
	out.set(4, 4, col)
	out.set(4, 5, col)
}

func lineSteep6x(col uint32, out *outputMatrix) {
	out.blend(0, 5, col, 1, 4)
	out.blend(2, 4, col, 1, 4)
	out.blend(4, 3, col, 1, 4)
	out.blend(1, 5, col, 3, 4)
	out.blend(3, 4, col, 3, 4)
	out.blend(5, 3, col, 3, 4)
	out.set(2, 5, col)
	out.set(3, 5, col)
	out.set(4, 5, col)
	out.set(5, 5, col)
	out.set(4, 4, col)
	out.set(5, 4, col)
}

func lineSteepAndShallow6x(col uint32, out *outputMatrix) {
	out.blend(0, 5, col, 1, 4)
	out.blend(2, 4, col, 1, 4)
	out.blend(1, 5, col, 3, 4)
	out.blend(3, 4, col, 3, 4)
	out.blend(5, 0, col, 1, 4)
	out.blend(4, 2, col, 1, 4)
	out.blend(5, 1, col, 3, 4)
	out.blend(4, 3, col, 3, 4)
	out.set(2, 5, col)
	out.set(3, 5, col)
	out.set(4, 5, col)
	out.set(5, 5, col)
	out.set(4, 4, col)
	out.set(5, 4, col)
	out.set(5, 2, col)
	out.set(5, 3, col)
}

func lineDiagonal6x(col uint32, out *outputMatrix) {
	out.blend(5, 3, col, 1, 2)
	out.blend(4, 4, col, 1, 2)
	out.blend(3, 5, col, 1, 2)
	out.set(4, 5, col)
	out.set(5, 5, col)
	out.set(5, 4, col)
}

func corner6x(col uint32, out *outputMatrix) {
	out.blend(5, 5, col, 97, cornerDenom)
	out.blend(4, 5, col, 42, cornerDenom)
	out.blend(5, 4, col, 42, cornerDenom)
	out.blend(5, 3, col, 6, cornerDenom)
	out.blend(3, 5, col, 6, cornerDenom)
}
