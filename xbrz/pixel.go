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

// Packed pixels are 0xAARRGGBB.

func alpha(p uint32) uint32 { return p >> 24 }
func red(p uint32) uint32   { return (p >> 16) & 0xff }
func green(p uint32) uint32 { return (p >> 8) & 0xff }
func blue(p uint32) uint32  { return p & 0xff }

func makePixel(a, r, g, b uint32) uint32 {
	return a<<24 | r<<16 | g<<8 | b
}
