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

// blendType grades the evidence for blending one corner of a pixel.
// It must fit into two bits.
type blendType uint8

const (
	blendNone     blendType = iota
	blendNormal             // a normal indication to blend
	blendDominant           // a strong indication to blend
)

// blendInfo packs the blend types of the four corners of a pixel:
// bits 0-1 top-left, 2-3 top-right, 4-5 bottom-right, 6-7 bottom-left.
// Setters OR into the value, which must start at zero.
type blendInfo uint8

func (b blendInfo) topL() blendType    { return blendType(b & 0x3) }
func (b blendInfo) topR() blendType    { return blendType((b >> 2) & 0x3) }
func (b blendInfo) bottomR() blendType { return blendType((b >> 4) & 0x3) }
func (b blendInfo) bottomL() blendType { return blendType((b >> 6) & 0x3) }

func (b *blendInfo) setTopL(t blendType)    { *b |= blendInfo(t) }
func (b *blendInfo) setTopR(t blendType)    { *b |= blendInfo(t) << 2 }
func (b *blendInfo) setBottomR(t blendType) { *b |= blendInfo(t) << 4 }
func (b *blendInfo) setBottomL(t blendType) { *b |= blendInfo(t) << 6 }

// rotated moves the corner that sits rot steps counter-clockwise from the
// bottom-right into the bottom-right slot.
func (b blendInfo) rotated(rot rotation) blendInfo {
	s := 2 * uint(rot)
	return b<<s | b>>(8-s)
}
