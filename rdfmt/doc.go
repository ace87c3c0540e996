// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rdfmt reads rate-distortion result files produced by codec
// evaluation runs.
//
// A result file is a JSON document of the form
//
//	{
//		"name": "bmshj2018-factorized",
//		"results": {
//			"bpp":    [0.12, 0.23, 0.41],
//			"psnr":   [29.1, 30.8, 32.6],
//			"msssim": [0.941, 0.962, 0.975]
//		}
//	}
//
// The "results" object maps metric names to sequences of values, one
// per rate point, and must contain the "bpp" (bits per pixel) rate
// series. "name" is optional and defaults to the file stem. Files
// with a .yaml or .yml extension are read as YAML with the same
// structure.
//
// ParseFile reads a single file into a Series for a chosen metric.
// Files reads a sequence of files, in order, for command-line use.
package rdfmt
