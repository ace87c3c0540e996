// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the rdplot command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/codec-eval/rdplot/internal/config"
	"github.com/codec-eval/rdplot/rdchart"
	"github.com/codec-eval/rdplot/rdfmt"
)

// CLI holds state shared by the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// plotOpts holds the command-line flags.
type plotOpts struct {
	files      []string // result files from -f, before positional args
	metric     string   // metric to plot on the y axis
	title      string   // chart title
	output     string   // output file; backend default if empty
	axes       []int    // xmin, xmax, ymin, ymax
	backend    string   // rendering backend name
	width      float64  // figure width in inches
	height     float64  // figure height in inches
	noShow     bool     // do not open a viewer
	configPath string   // explicit config file
	verbose    bool     // debug logging
}

// RootCommand creates the rdplot command.
func (c *CLI) RootCommand() *cobra.Command {
	def := config.Default()
	opts := plotOpts{
		metric:  def.Metric,
		axes:    def.Axes,
		backend: def.Backend,
		width:   def.Width,
		height:  def.Height,
	}

	cmd := &cobra.Command{
		Use:   "rdplot [flags] [file ...]",
		Short: "Plot rate-distortion curves from codec result files",
		Long: `rdplot plots rate-distortion (RD) curves from JSON result files produced
by codec evaluation runs, one curve per file, bit rate against the chosen
metric. Files may be given as label=path to override the curve name, and
"-" reads a result document from standard input.

Defaults may be set in a TOML config file, by default
$XDG_CONFIG_HOME/rdplot/config.toml; flags override it.`,
		Example: `  rdplot -f bmshj2018.json -f cheng2020.json -t Kodak -o kodak.png
  rdplot -m msssim --axes 0,2,8,20 --backend html *.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.applyConfig(cmd.Flags(), &opts); err != nil {
				return err
			}
			// The backend is checked before any file is read.
			backend, err := rdchart.Lookup(opts.backend)
			if err != nil {
				return err
			}
			limits, err := rdchart.ParseLimits(opts.axes)
			if err != nil {
				return err
			}
			paths := append(append([]string(nil), opts.files...), args...)
			if len(paths) == 0 {
				return errors.New("no result files given (use -f or list them as arguments)")
			}
			return c.runPlot(cmd.Context(), cmd.InOrStdin(), backend, limits, paths, &opts)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&opts.files, "results-file", "f", nil, "result file(s) to plot, as path or label=path (repeatable)")
	f.StringVarP(&opts.metric, "metric", "m", opts.metric, "metric to plot")
	f.StringVarP(&opts.title, "title", "t", "", "plot title")
	f.StringVarP(&opts.output, "output", "o", "", "output file name")
	f.IntSliceVar(&opts.axes, "axes", opts.axes, "axes limits as xmin,xmax,ymin,ymax")
	f.StringVar(&opts.backend, "backend", opts.backend, "plot backend: "+strings.Join(rdchart.Names(), ", "))
	f.Float64Var(&opts.width, "width", opts.width, "figure width in inches")
	f.Float64Var(&opts.height, "height", opts.height, "figure height in inches")
	f.BoolVar(&opts.noShow, "no-show", false, "do not open the chart in a viewer")
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rdplot/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// applyConfig loads the config file and copies its settings into
// opts for every flag not set on the command line.
func (c *CLI) applyConfig(flags *pflag.FlagSet, opts *plotOpts) error {
	var cfg config.Config
	var err error
	path := opts.configPath
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "file", path)
	}

	set := func(name string, apply func()) {
		if !flags.Changed(name) {
			apply()
		}
	}
	set("metric", func() { opts.metric = cfg.Metric })
	set("title", func() { opts.title = cfg.Title })
	set("axes", func() { opts.axes = cfg.Axes })
	set("backend", func() { opts.backend = cfg.Backend })
	set("width", func() { opts.width = cfg.Width })
	set("height", func() { opts.height = cfg.Height })
	set("no-show", func() { opts.noShow = !cfg.Show })
	return nil
}

// runPlot loads every result file, in order, and renders them with
// backend. The first bad file aborts the run.
func (c *CLI) runPlot(ctx context.Context, stdin io.Reader, backend rdchart.Backend, limits *rdchart.Limits, paths []string, opts *plotOpts) error {
	files := &rdfmt.Files{
		Paths:       paths,
		Metric:      opts.metric,
		AllowStdin:  true,
		AllowLabels: true,
		Stdin:       stdin,
	}
	if rdfmt.IsDecibelMetric(opts.metric) {
		c.Logger.Debug("converting metric to decibels", "metric", opts.metric)
	}
	var series []*rdfmt.Series
	for files.Scan() {
		s := files.Series()
		c.Logger.Debug("loaded series", "file", files.Path(), "name", s.Name, "points", s.Len())
		if limits.Clips(s) {
			c.Logger.Warn("series extends beyond the axes", "name", s.Name, "axes", limits)
		}
		series = append(series, s)
	}
	if err := files.Err(); err != nil {
		var de *rdfmt.DecodeError
		if errors.As(err, &de) {
			c.Logger.Error("cannot decode result file", "file", de.FileName)
		}
		return err
	}

	prog := newProgress(c.Logger)
	err := backend.Render(ctx, series, rdchart.Options{
		Title:  opts.title,
		YLabel: opts.metric,
		Output: opts.output,
		Limits: limits,
		Width:  opts.width,
		Height: opts.height,
		Show:   !opts.noShow,
		Logger: c.Logger,
	})
	if err != nil {
		return fmt.Errorf("rendering with %s: %w", opts.backend, err)
	}
	prog.done(fmt.Sprintf("Rendered %d series", len(series)))
	return nil
}
