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
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/go-xbrz/go-xbrz/xbrz"
)

// formatValue adapts xbrz.ColorFormat to a command-line flag.
type formatValue struct {
	format xbrz.ColorFormat
}

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) String() string {
	return v.format.String()
}

func (v *formatValue) Set(s string) error {
	f, err := xbrz.ParseColorFormat(s)
	if err != nil {
		return err
	}
	v.format = f
	return nil
}

func (v *formatValue) Type() string {
	return "format"
}

func formatNames() string {
	names := lo.Map(xbrz.ColorFormats(), func(f xbrz.ColorFormat, _ int) string {
		return f.String()
	})
	return strings.Join(names, ", ")
}
