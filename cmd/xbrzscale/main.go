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


// Command xbrzscale scales pixel art images using the xBRZ algorithm.
//
// Usage:
//
//	xbrzscale 4 input.png output.png            # scale input.png by 4x
//	xbrzscale scale 2 sprite.bmp sprite_2x.png  # same, explicit subcommand
//	xbrzscale batch 3 -o out/ a.png b.gif       # many files at once
//	xbrzscale info                              # version, CPU and worker setup
//
// Inputs may be PNG, GIF, JPEG, BMP or WebP. Output is always PNG with an
// alpha channel. The scale factor must be between 2 and 6 (inclusive).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
