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

// rotation is a multiple of 90 degrees, clockwise. A single set of rules
// handles the bottom-right corner of a pixel; the other three corners are
// handled by rotating the kernel, the blend info and the output block.
type rotation int

const (
	rot0 rotation = iota
	rot90
	rot180
	rot270
	numRotations
)

// kernel3x3 is the neighborhood of the pixel being blended:
//
//	-------------
//	| A | B | C |
//	|---|---|---|
//	| D | E | F |   input pixel is at position E
//	|---|---|---|
//	| G | H | I |
//	-------------
type kernel3x3 struct {
	a, b, c uint32
	d, e, f uint32
	g, h, i uint32
}

// rotate90 returns the kernel seen after turning the image 90 degrees so
// that the top-right corner takes the place of the bottom-right one.
func (k kernel3x3) rotate90() kernel3x3 {
	return kernel3x3{
		a: k.g, b: k.d, c: k.a,
		d: k.h, e: k.e, f: k.b,
		g: k.i, h: k.f, i: k.c,
	}
}

func (k kernel3x3) rotated(rot rotation) kernel3x3 {
	for range rot {
		k = k.rotate90()
	}
	return k
}

// rotateIndex maps (i, j) = (row, col) of an n x n block after rot back to
// the coordinates before the rotation.
func rotateIndex(i, j, n int, rot rotation) (int, int) {
	for range rot {
		i, j = n-1-j, i
	}
	return i, j
}

// outputMatrix addresses one n x n destination block through a rotation.
type outputMatrix struct {
	out    []uint32
	offset int // index of the block's top-left pixel
	stride int // destination row length
	n      int
	rot    rotation
	grad   gradientFunc
}

func (m *outputMatrix) index(i, j int) int {
	i, j = rotateIndex(i, j, m.n, m.rot)
	return m.offset + i*m.stride + j
}

// blend mixes col into pixel (i, j) with weight num/den.
func (m *outputMatrix) blend(i, j int, col, num, den uint32) {
	p := &m.out[m.index(i, j)]
	*p = m.grad(num, den, col, *p)
}

// set overwrites pixel (i, j) with col.
func (m *outputMatrix) set(i, j int, col uint32) {
	m.out[m.index(i, j)] = col
}
