// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdfmt

import (
	"fmt"
	"math"
)

// A TransformFunc maps the raw values of a metric to the values
// plotted for it. It must not modify vs.
type TransformFunc func(vs []float64) ([]float64, error)

// transforms selects a transform by metric name. Metrics not listed
// are plotted unchanged.
var transforms = map[string]TransformFunc{
	"msssim": ToDecibels,
}

// Transform applies the transform registered for metric to vs. The
// result never aliases vs.
func Transform(metric string, vs []float64) ([]float64, error) {
	if fn, ok := transforms[metric]; ok {
		return fn(vs)
	}
	return append([]float64(nil), vs...), nil
}

// IsDecibelMetric reports whether values of metric are converted to
// the decibel scale by Transform.
func IsDecibelMetric(metric string) bool {
	_, ok := transforms[metric]
	return ok
}

// Decibels converts a similarity score in [0, 1) to -10*log10(1-v).
func Decibels(v float64) float64 {
	return -10 * math.Log10(1-v)
}

// ToDecibels applies Decibels to each element of vs. It fails if any
// value lies outside [0, 1), where the conversion is not finite.
func ToDecibels(vs []float64) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		if !(v >= 0 && v < 1) {
			return nil, fmt.Errorf("value %v at index %d is outside [0, 1)", v, i)
		}
		out[i] = Decibels(v)
	}
	return out, nil
}
