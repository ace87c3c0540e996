// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdchart

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/codec-eval/rdplot/rdfmt"
)

// Limits are fixed axis ranges.
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultAxes are the default limits as xmin, xmax, ymin, ymax.
var DefaultAxes = []int{0, 2, 28, 43}

// ParseLimits builds Limits from exactly four values: xmin, xmax,
// ymin and ymax.
func ParseLimits(axes []int) (*Limits, error) {
	if len(axes) != 4 {
		return nil, fmt.Errorf("axes: want 4 values (xmin, xmax, ymin, ymax), got %d", len(axes))
	}
	l := &Limits{
		XMin: float64(axes[0]), XMax: float64(axes[1]),
		YMin: float64(axes[2]), YMax: float64(axes[3]),
	}
	if l.XMin >= l.XMax {
		return nil, fmt.Errorf("axes: xmin %v must be below xmax %v", l.XMin, l.XMax)
	}
	if l.YMin >= l.YMax {
		return nil, fmt.Errorf("axes: ymin %v must be below ymax %v", l.YMin, l.YMax)
	}
	return l, nil
}

func (l *Limits) String() string {
	return fmt.Sprintf("x=[%v, %v] y=[%v, %v]", l.XMin, l.XMax, l.YMin, l.YMax)
}

// Clips reports whether any point of s lies outside l.
func (l *Limits) Clips(s *rdfmt.Series) bool {
	if s.Len() == 0 {
		return false
	}
	xmin, xmax := stats.Bounds(s.Xs)
	ymin, ymax := stats.Bounds(s.Ys)
	return xmin < l.XMin || xmax > l.XMax || ymin < l.YMin || ymax > l.YMax
}
