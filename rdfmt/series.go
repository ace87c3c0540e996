// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdfmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A Series is one rate-distortion curve: the values of a single
// metric against bits per pixel.
type Series struct {
	// Name labels the curve in legends.
	Name string

	// Xs is the rate axis in bits per pixel.
	Xs []float64

	// Ys holds the metric values at each rate, after any metric
	// transform. len(Ys) == len(Xs).
	Ys []float64
}

// Len returns the number of rate points in s.
func (s *Series) Len() int {
	return len(s.Xs)
}

// XY returns the coordinates of the i'th rate point.
func (s *Series) XY(i int) (x, y float64) {
	return s.Xs[i], s.Ys[i]
}

// Stem returns the default series name for path: its base name up to
// the first dot.
func Stem(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// ParseFile reads the result file at path and extracts the series
// for metric. The format is chosen by FormatOf.
func ParseFile(path, metric string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f, path, FormatOf(path))
	if err != nil {
		return nil, err
	}
	return NewSeries(doc, path, metric)
}

// NewSeries validates doc and extracts the series for metric.
// fileName identifies doc in errors and supplies the default name
// when the document has none.
//
// The series shares no memory with doc.
func NewSeries(doc *Document, fileName, metric string) (*Series, error) {
	if !doc.Results.Present() {
		return nil, &ValidationError{fileName, `missing "results"`}
	}
	xs, ok := doc.Results.Get(RateKey)
	if !ok {
		return nil, &ValidationError{fileName, fmt.Sprintf("missing %q in results", RateKey)}
	}
	raw, ok := doc.Results.Get(metric)
	if !ok {
		return nil, &MetricError{FileName: fileName, Metric: metric, Available: doc.Results.Keys()}
	}
	if len(raw) != len(xs) {
		return nil, &ValidationError{fileName, fmt.Sprintf("%d %s values but %d %s values", len(xs), RateKey, len(raw), metric)}
	}
	ys, err := Transform(metric, raw)
	if err != nil {
		return nil, &ValidationError{fileName, fmt.Sprintf("metric %q: %v", metric, err)}
	}

	name := doc.Name
	if name == "" {
		name = Stem(fileName)
	}
	return &Series{
		Name: name,
		Xs:   append([]float64(nil), xs...),
		Ys:   ys,
	}, nil
}
