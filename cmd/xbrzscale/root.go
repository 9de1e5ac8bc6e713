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
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-xbrz/go-xbrz/xbrz"
)

// workersEnv overrides the default number of scaling workers.
const workersEnv = "XBRZ_WORKERS"

// options holds the flags shared by all subcommands.
type options struct {
	quiet   bool
	workers int
	format  formatValue
}

func newRootCmd() *cobra.Command {
	opts := &options{
		workers: defaultWorkers(),
		format:  formatValue{xbrz.ARGB},
	}

	cmd := &cobra.Command{
		Use:   "xbrzscale [factor input output]",
		Short: "Scale pixel art images using the xBRZ algorithm",
		Long: `Scale pixel art images using the xBRZ algorithm.

The scale factor must be between 2 and 6 (inclusive).
Output is always saved as PNG format.`,
		Example: `  xbrzscale 4 input.png output.png     Scale input.png by 4x
  xbrzscale 2 sprite.bmp sprite_2x.png Scale sprite.bmp by 2x`,
		Version:       xbrz.Version(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runScale(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("xbrzscale {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress output")
	flags.IntVarP(&opts.workers, "workers", "w", opts.workers,
		"number of scaling workers (default from $"+workersEnv+" or GOMAXPROCS)")
	flags.Var(&opts.format, "format", "color format: "+formatNames())

	cmd.AddCommand(
		newScaleCmd(opts),
		newBatchCmd(opts),
		newInfoCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// defaultWorkers returns the worker count from $XBRZ_WORKERS, or
// GOMAXPROCS if it is unset or not a positive integer.
func defaultWorkers() int {
	val := os.Getenv(workersEnv)
	if val == "" {
		return runtime.GOMAXPROCS(0)
	}
	if n, err := strconv.Atoi(val); err == nil && n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the xBRZ library version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xbrzscale %s\n", xbrz.Version())
		},
	}
}
