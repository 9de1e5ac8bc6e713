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


package main

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// reporter prints progress lines. Lines from concurrent jobs are written
// whole and never interleave.
type reporter struct {
	mu    sync.Mutex
	w     io.Writer
	p     *message.Printer
	quiet bool
}

func newReporter(w io.Writer, quiet bool) *reporter {
	return &reporter{
		w:     w,
		p:     message.NewPrinter(language.English),
		quiet: quiet,
	}
}

// Printf formats with locale-aware number grouping.
func (r *reporter) Printf(format string, args ...any) {
	if r.quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Fprintf(r.w, format, args...)
}

// size renders image dimensions without number grouping.
func size(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}
