// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdfmt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFile is matched (via errors.Is) by every *ValidationError.
var ErrInvalidFile = errors.New("invalid result file")

// A DecodeError reports that a result file could not be decoded as
// structured data.
type DecodeError struct {
	FileName string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error reading file %q: %v", e.FileName, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// A ValidationError reports that a decoded result file lacks a
// required key or holds values that cannot form a series.
type ValidationError struct {
	FileName string
	Msg      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid file %q: %s", e.FileName, e.Msg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidFile
}

// A MetricError reports that the requested metric is not present in
// a result file. Available lists the metrics that are present, in
// document order.
type MetricError struct {
	FileName  string
	Metric    string
	Available []string
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("%s: metric %q not available. Available metrics: %s",
		e.FileName, e.Metric, strings.Join(e.Available, ", "))
}
