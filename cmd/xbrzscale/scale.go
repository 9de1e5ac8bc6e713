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
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-xbrz/go-xbrz/xbrz"
	"github.com/go-xbrz/go-xbrz/xbrz/contrib/raster"
	"github.com/go-xbrz/go-xbrz/xbrz/contrib/workerpool"
)

func newScaleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <factor> <input> <output>",
		Short: "Scale a single image",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScale(cmd, opts, args)
		},
	}
}

func runScale(cmd *cobra.Command, opts *options, args []string) error {
	factor, err := parseFactor(args[0])
	if err != nil {
		return err
	}
	input, output := args[1], args[2]
	if !isFile(input) {
		return fmt.Errorf("input file not found: %s", input)
	}

	pool := workerpool.New(opts.workers)
	defer pool.Close()

	job := scaleJob{
		factor: factor,
		format: opts.format.format,
		pool:   pool,
		report: newReporter(cmd.OutOrStdout(), opts.quiet),
	}
	return job.run(input, output)
}

// parseFactor parses and range-checks a scale factor argument.
func parseFactor(s string) (int, error) {
	factor, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid scale factor %q: %w", s, err)
	}
	if factor < xbrz.MinScale || factor > xbrz.MaxScale {
		return 0, fmt.Errorf("scale factor must be between %d and %d (inclusive), got %d",
			xbrz.MinScale, xbrz.MaxScale, factor)
	}
	return factor, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// scaleJob carries the settings for scaling one or more files.
type scaleJob struct {
	factor int
	format xbrz.ColorFormat
	pool   *workerpool.Pool
	report *reporter
}

// run loads input, scales it and saves the result to output as PNG.
func (j *scaleJob) run(input, output string) error {
	j.report.Printf("Loading image from %s...\n", input)
	src, err := loadImage(input)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	j.report.Printf("Image size: %s\n", size(src.Width(), src.Height()))

	j.report.Printf("Scaling image by %dx...\n", j.factor)
	dst, err := xbrz.ScaleImage(j.pool, j.factor, src, j.format)
	if err != nil {
		return fmt.Errorf("scaling failed: %w", err)
	}
	j.report.Printf("Scaled size: %s (%d pixels)\n", size(dst.Width(), dst.Height()), len(dst.Pix()))

	j.report.Printf("Saving image to %s...\n", output)
	if err := savePNG(output, dst); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	j.report.Printf("Done!\n")
	return nil
}

// loadImage decodes any registered image format into a packed raster.
func loadImage(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return raster.FromImage(img), nil
}

func savePNG(path string, img *raster.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return png.Encode(f, img.ToNRGBA())
}
