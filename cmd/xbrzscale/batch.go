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
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-xbrz/go-xbrz/xbrz/contrib/workerpool"
)

type batchOptions struct {
	outDir string
	jobs   int
}

func newBatchCmd(opts *options) *cobra.Command {
	bopts := &batchOptions{jobs: 2}
	cmd := &cobra.Command{
		Use:   "batch <factor> <input>...",
		Short: "Scale many images into an output directory",
		Long: `Scale many images into an output directory.

Each input is written as <name>_<factor>x.png. Files are processed
concurrently; all of them share one pool of scaling workers.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, bopts, args)
		},
	}
	cmd.Flags().StringVarP(&bopts.outDir, "out-dir", "o", ".", "directory for the scaled images")
	cmd.Flags().IntVarP(&bopts.jobs, "jobs", "j", bopts.jobs, "number of files scaled at the same time")
	return cmd
}

// outputName returns the file name used for input scaled by factor.
func outputName(input string, factor int) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%dx.png", base, factor)
}

func runBatch(cmd *cobra.Command, opts *options, bopts *batchOptions, args []string) error {
	factor, err := parseFactor(args[0])
	if err != nil {
		return err
	}
	if bopts.jobs <= 0 {
		return fmt.Errorf("--jobs must be positive, got %d", bopts.jobs)
	}
	if !isDir(bopts.outDir) {
		return fmt.Errorf("output directory not found: %s", bopts.outDir)
	}

	inputs := lo.Uniq(args[1:])
	if missing := lo.Reject(inputs, func(p string, _ int) bool { return isFile(p) }); len(missing) > 0 {
		return fmt.Errorf("input file not found: %s", strings.Join(missing, ", "))
	}
	clash := lo.FindDuplicatesBy(inputs, func(p string) string { return outputName(p, factor) })
	if len(clash) > 0 {
		return fmt.Errorf("inputs would overwrite each other: %s", strings.Join(clash, ", "))
	}

	pool := workerpool.New(opts.workers)
	defer pool.Close()

	job := scaleJob{
		factor: factor,
		format: opts.format.format,
		pool:   pool,
		report: newReporter(cmd.OutOrStdout(), opts.quiet),
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(bopts.jobs)
	for _, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			output := filepath.Join(bopts.outDir, outputName(input, factor))
			if err := job.run(input, output); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	job.report.Printf("Scaled %d files by %dx\n", len(inputs), factor)
	return nil
}
