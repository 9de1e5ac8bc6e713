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

// ITU-R BT.2020 luma coefficients used by the YCbCr color distance.
const (
	KB = 0.0593
	KR = 0.2627
	KG = 1 - KB - KR
)

// Chroma scale factors derived from the luma coefficients.
const (
	scaleCb = 0.5 / (1 - KB)
	scaleCr = 0.5 / (1 - KR)
)

// Corner blend strengths, as M/N fractions of the blended-in color.
// The rounded values approximate the area of a quarter circle of radius
// N/2 clipped against each output sub-pixel.
//
//	2x: 1 - pi/4                = 0.2146018366
//	3x: center                  = 0.4545939598
//	4x: center, edge            = 0.6848532563, 0.08677704501
//	5x: center, edge            = 0.8631434088, 0.2306749731
//	6x: center, edge, far edge  = 0.9711013910, 0.4236372243, 0.05652034508
const cornerDenom = 100
