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

// Package xbrz implements the xBRZ edge-directed pixel-art upscaler.
//
// A source raster of packed 32-bit colors is magnified by an integer factor
// between 2 and 6. Flat regions and straight edges are replicated exactly;
// diagonal edges, slopes and isolated corners are reconstructed by blending
// neighboring colors along the detected edge line.
//
// # Usage Example
//
//	src := make([]uint32, w*h) // 0xAARRGGBB
//	dst := make([]uint32, w*4*h*4)
//	if err := xbrz.Scale(4, src, dst, w, h, xbrz.ARGB); err != nil {
//	    return err
//	}
//
// # Pipeline
//
// For every source pixel the engine:
//
//	1. samples a 4x4 window around the corner shared with its right,
//	   bottom and bottom-right neighbors (clamp-to-edge at the borders)
//	2. classifies that corner as NONE, NORMAL or DOMINANT blend
//	3. fills the NxN output block with the source color
//	4. blends each of the four corners of the block with the kernel for N,
//	   evaluating all four rotations with a single rule set
//
// # Concurrency
//
// Scale is a pure function of its inputs. ScaleRows processes a band of
// source rows and produces the same bytes the full call would produce for
// those rows, so disjoint bands may run concurrently. ScaleParallel does
// this on a workerpool.Pool.
package xbrz
