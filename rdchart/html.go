// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nohtml

package rdchart

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/codec-eval/rdplot/rdfmt"
)

func init() {
	Register("html", new(HTML))
}

// DefaultHTMLOutput is written by the html backend when Options.Output
// is empty.
const DefaultHTMLOutput = "plot.html"

// PlotlyURL is the plotly.js bundle loaded by generated pages.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// HTML renders charts as a standalone interactive HTML page driven
// by plotly.js. The page also embeds a static SVG rendering for
// viewers without scripts. HTML never opens a viewer; Options.Show
// is ignored.
type HTML struct{}

func (b *HTML) Render(ctx context.Context, series []*rdfmt.Series, opts Options) error {
	path := opts.Output
	if path == "" {
		path = DefaultHTMLOutput
	}
	var buf bytes.Buffer
	if err := b.Write(&buf, series, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
		return err
	}
	opts.logger().Info("wrote chart", "file", path, "series", len(series))
	return nil
}

// Write writes the HTML page for series to w.
func (b *HTML) Write(w io.Writer, series []*rdfmt.Series, opts Options) error {
	width, height := opts.size()
	page := htmlPage{
		Title:     opts.Title,
		PlotlyURL: PlotlyURL,
		Width:     int(width * 96),
		Height:    int(height * 96),
		Traces:    []plotlyTrace{},
		Layout:    newPlotlyLayout(opts),
	}
	for _, s := range series {
		page.Traces = append(page.Traces, plotlyTrace{
			Type: "scatter",
			Mode: "lines+markers",
			Name: s.Name,
			X:    nonNil(s.Xs),
			Y:    nonNil(s.Ys),
		})
	}

	svg, err := fallbackSVG(series, opts, page.Width, page.Height)
	if err != nil {
		opts.logger().Debug("no static fallback for html chart", "err", err)
	} else {
		page.Fallback = svg
	}
	return htmlTemplate.Execute(w, page)
}

type htmlPage struct {
	Title         string
	PlotlyURL     string
	Width, Height int
	Traces        []plotlyTrace
	Layout        plotlyLayout
	Fallback      template.HTML
}

type plotlyTrace struct {
	Type string    `json:"type"`
	Mode string    `json:"mode"`
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

type plotlyText struct {
	Text string `json:"text"`
}

type plotlyFont struct {
	Size int `json:"size"`
}

type plotlyLegend struct {
	Font plotlyFont `json:"font"`
}

type plotlyAxis struct {
	Title plotlyText `json:"title"`
	Range []float64  `json:"range,omitempty"`
}

type plotlyLayout struct {
	Title  plotlyText   `json:"title"`
	Legend plotlyLegend `json:"legend"`
	XAxis  plotlyAxis   `json:"xaxis"`
	YAxis  plotlyAxis   `json:"yaxis"`
}

func newPlotlyLayout(opts Options) plotlyLayout {
	l := plotlyLayout{
		Title:  plotlyText{opts.Title},
		Legend: plotlyLegend{Font: plotlyFont{Size: 14}},
		XAxis:  plotlyAxis{Title: plotlyText{XLabel}},
		YAxis:  plotlyAxis{Title: plotlyText{opts.YLabel}},
	}
	if lim := opts.Limits; lim != nil {
		l.XAxis.Range = []float64{lim.XMin, lim.XMax}
		l.YAxis.Range = []float64{lim.YMin, lim.YMax}
	}
	return l
}

// nonNil keeps empty series encoding as [] rather than null.
func nonNil(vs []float64) []float64 {
	if vs == nil {
		return []float64{}
	}
	return vs
}

// fallbackSVG draws series with go-chart. go-chart needs a non-empty
// range on both axes, so charts of single points without Limits fail.
// The page supplies the title.
func fallbackSVG(series []*rdfmt.Series, opts Options, width, height int) (template.HTML, error) {
	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: XLabel},
		YAxis:  chart.YAxis{Name: opts.YLabel},
	}
	if lim := opts.Limits; lim != nil {
		graph.XAxis.Range = &chart.ContinuousRange{Min: lim.XMin, Max: lim.XMax}
		graph.YAxis.Range = &chart.ContinuousRange{Min: lim.YMin, Max: lim.YMax}
	}
	for _, s := range series {
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.Xs,
			YValues: s.Ys,
		})
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var htmlTemplate = template.Must(template.New("").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}}{{else}}RD curves{{end}}</title>
<script src="{{.PlotlyURL}}"></script>
</head>
<body>
<div id="rdplot" style="width:{{.Width}}px;height:{{.Height}}px"></div>
{{- with .Fallback}}
<noscript>
{{.}}
</noscript>
{{- end}}
<script>
Plotly.newPlot("rdplot", {{.Traces}}, {{.Layout}}, {responsive: true});
</script>
</body>
</html>
`))
