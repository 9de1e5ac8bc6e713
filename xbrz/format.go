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

import (
	"fmt"
	"strings"
)

// ColorFormat selects how the 32 bits of a packed pixel are interpreted.
// Every format uses the 0xAARRGGBB channel order; the format changes the
// distance metric and the blend math, never the classification rules.
type ColorFormat int

const (
	// RGB ignores alpha for classification. Blending is a plain weighted
	// mean of all four channels, so opaque input stays opaque.
	RGB ColorFormat = iota

	// ARGB is alpha aware: fully transparent pixels carry no color weight
	// and colors are blended in alpha-weighted (premultiplied) space.
	// Color distances come from a lookup table built on first use.
	ARGB

	// ARGBUnbuffered has the same semantics as ARGB but computes every
	// color distance directly instead of consulting the lookup table.
	// It is slower but exact and symmetric in its arguments.
	ARGBUnbuffered
)

// String returns a human-readable name for the color format.
func (f ColorFormat) String() string {
	switch f {
	case RGB:
		return "rgb"
	case ARGB:
		return "argb"
	case ARGBUnbuffered:
		return "argb-unbuffered"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the declared formats.
func (f ColorFormat) Valid() bool {
	return f >= RGB && f <= ARGBUnbuffered
}

// ColorFormats returns all supported formats in declaration order.
func ColorFormats() []ColorFormat {
	return []ColorFormat{RGB, ARGB, ARGBUnbuffered}
}

// ParseColorFormat returns the format whose String form matches s.
// Matching ignores case and surrounding whitespace.
func ParseColorFormat(s string) (ColorFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range ColorFormats() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColorFormat, s)
}
