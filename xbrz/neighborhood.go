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

import "github.com/go-xbrz/go-xbrz/xbrz/contrib/raster"

// kernel4x4 is the window used to classify the corner shared by F, G, J
// and K:
//
//	-----------------
//	| A | B | C | D |
//	|---|---|---|---|
//	| E | F | G | H |   input pixel is at position F
//	|---|---|---|---|
//	| I | J | K | L |
//	|---|---|---|---|
//	| M | N | O | P |
//	-----------------
type kernel4x4 struct {
	a, b, c, d uint32
	e, f, g, h uint32
	i, j, k, l uint32
	m, n, o, p uint32
}

// center returns the 3x3 neighborhood of F.
func (k *kernel4x4) center() kernel3x3 {
	return kernel3x3{
		a: k.a, b: k.b, c: k.c,
		d: k.e, e: k.f, f: k.g,
		g: k.i, h: k.j, i: k.k,
	}
}

// sampleWindow fills ker with the pixels at offsets -1..+2 around (x, y).
// Coordinates outside the image are clamped to the nearest edge pixel.
func sampleWindow(src []uint32, width, height, x, y int, ker *kernel4x4) {
	rowM1 := src[width*raster.Clamp(y-1, height):]
	row0 := src[width*y:]
	rowP1 := src[width*raster.Clamp(y+1, height):]
	rowP2 := src[width*raster.Clamp(y+2, height):]

	xM1 := raster.Clamp(x-1, width)
	xP1 := raster.Clamp(x+1, width)
	xP2 := raster.Clamp(x+2, width)

	ker.a, ker.b, ker.c, ker.d = rowM1[xM1], rowM1[x], rowM1[xP1], rowM1[xP2]
	ker.e, ker.f, ker.g, ker.h = row0[xM1], row0[x], row0[xP1], row0[xP2]
	ker.i, ker.j, ker.k, ker.l = rowP1[xM1], rowP1[x], rowP1[xP1], rowP1[xP2]
	ker.m, ker.n, ker.o, ker.p = rowP2[xM1], rowP2[x], rowP2[xP1], rowP2[xP2]
}
