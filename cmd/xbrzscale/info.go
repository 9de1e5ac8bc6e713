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
	"os"
	"runtime"
	"unsafe"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/go-xbrz/go-xbrz/xbrz"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print library version, CPU and worker configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printInfo(cmd.OutOrStdout(), opts)
		},
	}
}

func printInfo(w io.Writer, opts *options) {
	fmt.Fprintf(w, "xBRZ version: %s\n", xbrz.Version())
	fmt.Fprintf(w, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "Scale factors: %d-%d\n", xbrz.MinScale, xbrz.MaxScale)
	fmt.Fprintf(w, "Color format: %s (available: %s)\n", opts.format.String(), formatNames())

	workers := fmt.Sprint(opts.workers)
	if env := os.Getenv(workersEnv); env != "" {
		workers += fmt.Sprintf(" ($%s=%s)", workersEnv, env)
	}
	fmt.Fprintf(w, "Workers: %s, GOMAXPROCS: %d\n", workers, runtime.GOMAXPROCS(0))
	fmt.Fprintf(w, "Cache line padding: %d bytes\n", unsafe.Sizeof(cpu.CacheLinePad{}))

	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintf(w, "CPU features: SSE4.1=%t AVX2=%t AVX512F=%t FMA=%t\n",
			cpu.X86.HasSSE41, cpu.X86.HasAVX2, cpu.X86.HasAVX512F, cpu.X86.HasFMA)
	case "arm64":
		fmt.Fprintf(w, "CPU features: ASIMD=%t SVE=%t\n", cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE)
	}
}
