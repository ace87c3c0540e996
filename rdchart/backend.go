// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rdchart renders rate-distortion curves.
//
// A Backend draws a set of rdfmt.Series as one chart: bit rate on the
// x axis, the metric on the y axis, one line per series and a legend
// keyed by series name. Backends register themselves by name; the
// static backend is always present, others depend on build tags.
package rdchart

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/codec-eval/rdplot/rdfmt"
)

// XLabel is the x axis label of every chart.
const XLabel = "Bit-rate [bpp]"

// Default is the name of the backend used when none is selected.
const Default = "static"

// Default figure size in inches.
const (
	DefaultWidth  = 9
	DefaultHeight = 6
)

// A Backend renders series to a chart.
type Backend interface {
	Render(ctx context.Context, series []*rdfmt.Series, opts Options) error
}

// Options control a single Render call.
type Options struct {
	// Title is the chart title. It may be empty.
	Title string

	// YLabel labels the y axis, usually with the metric name.
	YLabel string

	// Output is the file to write. Each backend documents what an
	// empty Output means.
	Output string

	// Limits fixes the axis ranges. If nil, axes fit the data.
	Limits *Limits

	// Width and Height give the figure size in inches. Zero means
	// DefaultWidth and DefaultHeight.
	Width, Height float64

	// Show asks the backend to display the chart after writing it.
	Show bool

	// Logger receives progress messages. If nil, log.Default() is
	// used.
	Logger *log.Logger
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

func (o *Options) size() (w, h float64) {
	w, h = o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

var backends = make(map[string]Backend)

// Register makes a backend available under name. It panics if name
// is already registered.
func Register(name string, b Backend) {
	if _, dup := backends[name]; dup {
		panic("rdchart: Register called twice for backend " + name)
	}
	backends[name] = b
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return b, nil
}

// Names returns the registered backend names, Default first and the
// rest sorted.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		if name != Default {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := backends[Default]; ok {
		names = append([]string{Default}, names...)
	}
	return names
}
