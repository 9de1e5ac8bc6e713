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

// classifier holds the distance metric and thresholds of one scale call.
type classifier struct {
	dist distanceFunc
	cfg  Config
}

func (c *classifier) distance(a, b uint32) float64 {
	return c.dist(a, b, c.cfg.LuminanceWeight)
}

func (c *classifier) equal(a, b uint32) bool {
	return c.distance(a, b) < c.cfg.EqualColorTolerance
}

// cornerBlend is the classification of the corner shared by F, G, J and K,
// seen from each of the four pixels:
//
//	---------
//	| F | G |
//	|---|---|
//	| J | K |
//	---------
type cornerBlend struct {
	f, g, j, k blendType
}

// flatCorner reports whether the center corner of ker has two equal
// parallel sides and needs no blend.
func flatCorner(ker *kernel4x4) bool {
	return (ker.f == ker.g && ker.j == ker.k) || (ker.f == ker.j && ker.g == ker.k)
}

// cornerGradients sums the color distances along the two diagonals through
// the center corner of ker. jg runs parallel to the J-G diagonal and fk to
// the F-K one. The center pair is weighted by CenterDirectionBias.
func (c *classifier) cornerGradients(ker *kernel4x4) (jg, fk float64) {
	d := c.distance
	w := c.cfg.CenterDirectionBias
	// Products are converted explicitly so they are never fused.
	jg = d(ker.i, ker.f) + d(ker.f, ker.c) + d(ker.n, ker.k) + d(ker.k, ker.h) + float64(w*d(ker.j, ker.g))
	fk = d(ker.e, ker.j) + d(ker.j, ker.o) + d(ker.b, ker.g) + d(ker.g, ker.l) + float64(w*d(ker.f, ker.k))
	return jg, fk
}

// preProcessCorners detects the blend direction across the center corner
// of ker. Exactly one diagonal can win; ties leave the corner unblended.
func (c *classifier) preProcessCorners(ker *kernel4x4) cornerBlend {
	var res cornerBlend
	if flatCorner(ker) {
		return res
	}

	jg, fk := c.cornerGradients(ker)
	switch {
	case jg < fk:
		strength := blendNormal
		if float64(c.cfg.DominantDirectionThreshold*jg) < fk {
			strength = blendDominant
		}
		if ker.f != ker.g && ker.f != ker.j {
			res.f = strength
		}
		if ker.k != ker.j && ker.k != ker.g {
			res.k = strength
		}
	case fk < jg:
		strength := blendNormal
		if float64(c.cfg.DominantDirectionThreshold*fk) < jg {
			strength = blendDominant
		}
		if ker.j != ker.f && ker.j != ker.k {
			res.j = strength
		}
		if ker.g != ker.f && ker.g != ker.k {
			res.g = strength
		}
	}
	return res
}

// lineBlend decides between blending a full edge line through the
// bottom-right corner of E and rounding the corner only.
func (c *classifier) lineBlend(ker *kernel3x3, blend blendInfo) bool {
	if blend.bottomR() >= blendDominant {
		return true
	}

	// No second blend in an adjacent rotation for this pixel (insular
	// pixels), except for 90 degree corners.
	if blend.topR() != blendNone && !c.equal(ker.e, ker.g) {
		return false
	}
	if blend.bottomL() != blendNone && !c.equal(ker.e, ker.c) {
		return false
	}

	// L-shapes get the corner only.
	if !c.equal(ker.e, ker.i) && c.equal(ker.g, ker.h) && c.equal(ker.h, ker.i) &&
		c.equal(ker.i, ker.f) && c.equal(ker.f, ker.c) {
		return false
	}
	return true
}

// blendPixel blends the corner of the output block selected by rot.
func (s *scaler) blendPixel(ker kernel3x3, rot rotation, info blendInfo, out *outputMatrix) {
	blend := info.rotated(rot)
	if blend.bottomR() < blendNormal {
		return
	}
	ker = ker.rotated(rot)
	out.rot = rot

	// Blend with the more similar of the two edge neighbors.
	px := ker.f
	if s.distance(ker.e, ker.f) > s.distance(ker.e, ker.h) {
		px = ker.h
	}

	if !s.lineBlend(&ker, blend) {
		s.kernel.corner(px, out)
		return
	}

	fg := s.distance(ker.f, ker.g)
	hc := s.distance(ker.h, ker.c)
	t := s.cfg.SteepDirectionThreshold
	shallow := float64(t*fg) <= hc && ker.e != ker.g && ker.d != ker.g
	steep := float64(t*hc) <= fg && ker.e != ker.c && ker.b != ker.c

	switch {
	case shallow && steep:
		s.kernel.lineSteepAndShallow(px, out)
	case shallow:
		s.kernel.lineShallow(px, out)
	case steep:
		s.kernel.lineSteep(px, out)
	default:
		s.kernel.lineDiagonal(px, out)
	}
}
