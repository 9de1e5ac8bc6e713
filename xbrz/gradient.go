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

// gradientFunc returns front blended over back with weight m/n for front.
// 0 < m < n <= 1000.
type gradientFunc func(m, n, front, back uint32) uint32

// gradientRGB blends every channel, alpha included, as a plain weighted mean.
func gradientRGB(m, n, front, back uint32) uint32 {
	mix := func(f, b uint32) uint32 { return (f*m + b*(n-m)) / n }
	return makePixel(
		mix(alpha(front), alpha(back)),
		mix(red(front), red(back)),
		mix(green(front), green(back)),
		mix(blue(front), blue(back)),
	)
}

// gradientARGB finds the intermediate color of two pixels with alpha.
// Each color is weighted by its own alpha, so transparent pixels contribute
// no color and no dark fringe appears along transparent edges.
func gradientARGB(m, n, front, back uint32) uint32 {
	weightFront := alpha(front) * m
	weightBack := alpha(back) * (n - m)
	weightSum := weightFront + weightBack
	if weightSum == 0 {
		return 0
	}
	mix := func(f, b uint32) uint32 { return (f*weightFront + b*weightBack) / weightSum }
	return makePixel(
		weightSum/n,
		mix(red(front), red(back)),
		mix(green(front), green(back)),
		mix(blue(front), blue(back)),
	)
}

func gradientFor(format ColorFormat) gradientFunc {
	if format == RGB {
		return gradientRGB
	}
	return gradientARGB
}
