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
	"math"
)

// Supported scale factors.
const (
	MinScale = 2
	MaxScale = 6
)

// Config holds the tuning constants of the classifier.
//
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// LuminanceWeight scales the luma term of the YCbCr distance relative
	// to the two chroma terms. Only used by ARGBUnbuffered; the buffered
	// lookup table is built with weight 1.
	LuminanceWeight float64

	// EqualColorTolerance is the distance below which two colors count as
	// "effectively equal".
	EqualColorTolerance float64

	// CenterDirectionBias weights the distance across the diagonal under
	// test against the four distances parallel to it.
	CenterDirectionBias float64

	// DominantDirectionThreshold is the ratio between the two diagonal
	// gradients above which a corner blend becomes dominant.
	DominantDirectionThreshold float64

	// SteepDirectionThreshold is the ratio that separates a shallow or
	// steep line from a 45 degree one.
	SteepDirectionThreshold float64
}

// DefaultConfig returns the tuning that the golden outputs are recorded with.
func DefaultConfig() Config {
	return Config{
		LuminanceWeight:            1,
		EqualColorTolerance:        30,
		CenterDirectionBias:        4,
		DominantDirectionThreshold: 3.6,
		SteepDirectionThreshold:    2.2,
	}
}

// Validate returns ErrConfig if any constant is not a finite positive number.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"LuminanceWeight", c.LuminanceWeight},
		{"EqualColorTolerance", c.EqualColorTolerance},
		{"CenterDirectionBias", c.CenterDirectionBias},
		{"DominantDirectionThreshold", c.DominantDirectionThreshold},
		{"SteepDirectionThreshold", c.SteepDirectionThreshold},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("%w: %s = %v", ErrConfig, f.name, f.value)
		}
	}
	return nil
}
