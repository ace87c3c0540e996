// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdchart

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/codec-eval/rdplot/rdfmt"
)

func init() {
	Register("static", new(Static))
}

// Static renders charts as images with gonum/plot.
//
// Output, if set, names the image to write; its extension selects
// the format (png, svg, pdf, eps, jpg, tif). When Show is set the
// image is then opened in the platform viewer; with no Output a
// temporary PNG is written for that purpose. Failing to open a saved
// Output is logged, not returned.
type Static struct {
	// Open displays a written image. If nil, OpenFile is used.
	Open func(ctx context.Context, path string) error
}

func (b *Static) Render(ctx context.Context, series []*rdfmt.Series, opts Options) error {
	p, err := NewPlot(series, opts)
	if err != nil {
		return err
	}
	lg := opts.logger()
	w, h := opts.size()

	path := opts.Output
	if path != "" {
		if err := saveImage(p, w, h, path); err != nil {
			return err
		}
		lg.Info("wrote chart", "file", path, "series", len(series))
	}
	if !opts.Show {
		return nil
	}

	if path == "" {
		f, err := os.CreateTemp("", "rdplot-*.png")
		if err != nil {
			return err
		}
		err = writeImage(f, p, w, h, "png")
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		path = f.Name()
	}

	open := b.Open
	if open == nil {
		open = OpenFile
	}
	lg.Debug("opening viewer", "file", path)
	if err := open(ctx, path); err != nil {
		if opts.Output == "" {
			return fmt.Errorf("displaying %s: %w", path, err)
		}
		// The chart is already saved; a missing viewer is not fatal.
		lg.Warn("cannot display chart", "file", path, "err", err)
	}
	return nil
}

// NewPlot lays out series on a single gonum plot with the labels,
// title and limits in opts.
func NewPlot(series []*rdfmt.Series, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = opts.YLabel

	grid := plotter.NewGrid()
	p.Add(grid)

	for i, s := range series {
		xys := make(plotter.XYs, s.Len())
		for j := range xys {
			xys[j].X, xys[j].Y = s.XY(j)
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		points.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}
	p.Legend.Top = false
	p.Legend.Left = false

	// Limits override the ranges p.Add derived from the data.
	if l := opts.Limits; l != nil {
		p.X.Min, p.X.Max = l.XMin, l.XMax
		p.Y.Min, p.Y.Max = l.YMin, l.YMax
	}
	return p, nil
}

// imageFormat returns the gonum/plot format name for path.
func imageFormat(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func saveImage(p *plot.Plot, w, h float64, path string) error {
	wt, err := p.WriterTo(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, imageFormat(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeImage(out io.Writer, p *plot.Plot, w, h float64, format string) error {
	wt, err := p.WriterTo(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(out)
	return err
}
