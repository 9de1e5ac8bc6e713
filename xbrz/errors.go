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
	"errors"
	"fmt"
	"unsafe"
)

// Precondition failures reported by the entry points. They are detected
// before any destination pixel is written; callers match them with errors.Is.
var (
	ErrNilBuffer   = errors.New("xbrz: nil source or destination buffer")
	ErrScaleFactor = errors.New("xbrz: scale factor out of range")
	ErrDimensions  = errors.New("xbrz: non-positive image dimensions")
	ErrBufferSize  = errors.New("xbrz: buffer size mismatch")
	ErrColorFormat = errors.New("xbrz: unknown color format")
	ErrOverlap     = errors.New("xbrz: source and destination buffers overlap")
	ErrConfig      = errors.New("xbrz: invalid scaler configuration")
)

// StatusCode maps the result of an entry point to the status convention of
// the C boundary: 0 on success and -1 for any precondition failure.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	return -1
}

// validate checks every boundary precondition in a fixed order.
func validate(factor int, src, dst []uint32, width, height int, format ColorFormat, cfg Config) error {
	if src == nil || dst == nil {
		return ErrNilBuffer
	}
	if err := checkFactor(factor); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if !format.Valid() {
		return fmt.Errorf("%w: %d", ErrColorFormat, int(format))
	}
	if len(src) != width*height {
		return fmt.Errorf("%w: source has %d pixels, want %d", ErrBufferSize, len(src), width*height)
	}
	if want := width * factor * height * factor; len(dst) != want {
		return fmt.Errorf("%w: destination has %d pixels, want %d", ErrBufferSize, len(dst), want)
	}
	if overlaps(src, dst) {
		return ErrOverlap
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return nil
}

func checkFactor(factor int) error {
	if factor < MinScale || factor > MaxScale {
		return fmt.Errorf("%w: got %d, want %d..%d", ErrScaleFactor, factor, MinScale, MaxScale)
	}
	return nil
}

// overlaps reports whether the backing memory of a and b intersects.
func overlaps(a, b []uint32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	const size = unsafe.Sizeof(uint32(0))
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size
	return a0 < b1 && b0 < a1
}
