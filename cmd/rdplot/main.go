// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rdplot plots rate-distortion (RD) curves comparing codecs.
//
// Usage:
//
//	rdplot [-m metric] [-t title] [-o output] [--axes xmin,xmax,ymin,ymax] [--backend name] file...
//
// Each input file is a JSON result document produced by a codec
// evaluation run:
//
//	{
//		"name": "bmshj2018-factorized",
//		"results": {
//			"bpp":  [0.12, 0.23, 0.41],
//			"psnr": [29.1, 30.8, 32.6]
//		}
//	}
//
// rdplot draws one curve per file with bits per pixel on the x axis
// and the metric selected by -m (default psnr) on the y axis. The
// curve is named by the document's "name", or by the file stem when
// there is none; a file given as label=path is named label instead.
// MS-SSIM ("msssim") values are converted to decibels as
// -10*log10(1-v).
//
// The --axes option fixes the plotted range (default 0,2,28,43).
//
// The --backend option selects how the chart is rendered. The
// "static" backend draws an image with gonum/plot, writes it to -o
// if given (png, svg, pdf, eps, jpg or tif by extension) and opens
// it in the platform viewer unless --no-show is set. The "html"
// backend writes an interactive plotly.js page to -o, or plot.html,
// and does not open it. Binaries built with the nohtml tag offer
// only the static backend.
//
// Defaults for these options may be placed in a TOML file at
// $XDG_CONFIG_HOME/rdplot/config.toml or named with --config.
//
// Any file that cannot be read, decoded, or that lacks "results",
// "bpp" or the requested metric aborts the run with exit status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/codec-eval/rdplot/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "rdplot: %v\n", err)
		os.Exit(1)
	}
}
