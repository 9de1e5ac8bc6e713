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

var kernel2x = kernel{
	scale:               2,
	lineShallow:         lineShallow2x,
	lineSteep:           lineSteep2x,
	lineSteepAndShallow: lineSteepAndShallow2x,
	lineDiagonal:        lineDiagonal2x,
	corner:              corner2x,
}

func lineShallow2x(col uint32, out *outputMatrix) {
	out.blend(1, 0, col, 1, 4)
	out.blend(1, 1, col, 3, 4)
}

func lineSteep2x(col uint32, out *outputMatrix) {
	out.blend(0, 1, col, 1, 4)
	out.blend(1, 1, col, 3, 4)
}

func lineSteepAndShallow2x(col uint32, out *outputMatrix) {
	out.blend(1, 0, col, 1, 4)
	out.blend(0, 1, col, 1, 4)
	out.blend(1, 1, col, 5, 6) // 5/6 rather than 7/8
}

func lineDiagonal2x(col uint32, out *outputMatrix) {
	out.blend(1, 1, col, 1, 2)
}

func corner2x(col uint32, out *outputMatrix) {
	out.blend(1, 1, col, 21, cornerDenom)
}
