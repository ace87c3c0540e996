// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdchart

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codec-eval/rdplot/rdfmt"
)

func TestParseLimits(t *testing.T) {
	got, err := ParseLimits(DefaultAxes)
	if err != nil {
		t.Fatal(err)
	}
	want := &Limits{XMin: 0, XMax: 2, YMin: 28, YMax: 43}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("default limits mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range [][]int{
		nil,
		{0, 2, 28},
		{0, 2, 28, 43, 50},
		{2, 0, 28, 43},
		{0, 2, 43, 43},
	} {
		if l, err := ParseLimits(bad); err == nil {
			t.Errorf("ParseLimits(%v) = %v, want error", bad, l)
		}
	}
}

func TestClips(t *testing.T) {
	l := &Limits{XMin: 0, XMax: 2, YMin: 28, YMax: 43}
	test := func(xs, ys []float64, want bool) {
		t.Helper()
		s := &rdfmt.Series{Name: "s", Xs: xs, Ys: ys}
		if got := l.Clips(s); got != want {
			t.Errorf("Clips(%v, %v) = %v, want %v", xs, ys, got, want)
		}
	}
	test(nil, nil, false)
	test([]float64{0.1, 1.9}, []float64{29, 42}, false)
	test([]float64{0, 2}, []float64{28, 43}, false)
	test([]float64{0.1, 2.5}, []float64{29, 42}, true)
	test([]float64{0.1, 1.9}, []float64{27, 42}, true)
	test([]float64{0.1, 1.9}, []float64{29, 44}, true)
}
