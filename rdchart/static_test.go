// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdchart

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/codec-eval/rdplot/rdfmt"
)

func TestNewPlot(t *testing.T) {
	limits := &Limits{XMin: 0, XMax: 2, YMin: 28, YMax: 43}
	p, err := NewPlot(testSeries, Options{Title: "Kodak", YLabel: "psnr", Limits: limits})
	if err != nil {
		t.Fatal(err)
	}
	if p.Title.Text != "Kodak" || p.X.Label.Text != XLabel || p.Y.Label.Text != "psnr" {
		t.Errorf("got labels %q, %q, %q", p.Title.Text, p.X.Label.Text, p.Y.Label.Text)
	}
	if p.X.Min != 0 || p.X.Max != 2 || p.Y.Min != 28 || p.Y.Max != 43 {
		t.Errorf("got ranges x=[%v, %v] y=[%v, %v], want %s", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max, limits)
	}

	// Without limits the axes fit the data.
	p, err = NewPlot(testSeries, Options{YLabel: "psnr"})
	if err != nil {
		t.Fatal(err)
	}
	if p.X.Min != 0.1 || p.X.Max != 0.5 || p.Y.Min != 30 || p.Y.Max != 35 {
		t.Errorf("got ranges x=[%v, %v] y=[%v, %v], want data bounds", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}

	bad := []*rdfmt.Series{{Name: "inf", Xs: []float64{0.1}, Ys: []float64{math.Inf(1)}}}
	if _, err := NewPlot(bad, Options{}); err == nil {
		t.Errorf("NewPlot with an infinite value succeeded")
	}
}

func TestStaticWritesFormats(t *testing.T) {
	dir := t.TempDir()
	magic := map[string][]byte{
		"rd.png": []byte("\x89PNG"),
		"rd.svg": []byte("<svg"),
		"rd.pdf": []byte("%PDF"),
	}
	for name, marker := range magic {
		path := filepath.Join(dir, name)
		opts := Options{Title: "Kodak", YLabel: "psnr", Output: path, Width: 4, Height: 3}
		if err := new(Static).Render(context.Background(), testSeries, opts); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if head := data[:min(len(data), 512)]; !bytes.Contains(head, marker) {
			t.Errorf("%s: output header %q does not contain %q", name, head, marker)
		}
	}

	// Unsupported formats fail without creating the file.
	path := filepath.Join(dir, "rd.bmp")
	if err := new(Static).Render(context.Background(), testSeries, Options{Output: path}); err == nil {
		t.Errorf("rd.bmp: got success, want unsupported format error")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("rd.bmp: file created despite error")
	}
}

func TestStaticShow(t *testing.T) {
	var opened []string
	b := &Static{Open: func(ctx context.Context, path string) error {
		opened = append(opened, path)
		return nil
	}}

	// Output and Show: the written image is displayed.
	out := filepath.Join(t.TempDir(), "rd.png")
	if err := b.Render(context.Background(), testSeries, Options{Output: out, Show: true}); err != nil {
		t.Fatal(err)
	}
	if len(opened) != 1 || opened[0] != out {
		t.Fatalf("opened %v, want [%s]", opened, out)
	}

	// Show without Output: a temporary PNG is displayed.
	if err := b.Render(context.Background(), testSeries, Options{Show: true}); err != nil {
		t.Fatal(err)
	}
	if len(opened) != 2 {
		t.Fatalf("opened %v, want a temporary file", opened)
	}
	tmp := opened[1]
	defer os.Remove(tmp)
	if filepath.Ext(tmp) != ".png" {
		t.Errorf("temporary file %s is not a PNG", tmp)
	}
	if fi, err := os.Stat(tmp); err != nil || fi.Size() == 0 {
		t.Errorf("temporary file %s missing or empty: %v", tmp, err)
	}

	// Neither: nothing is written or opened.
	if err := b.Render(context.Background(), testSeries, Options{}); err != nil {
		t.Fatal(err)
	}
	if len(opened) != 2 {
		t.Errorf("opened %v without Show", opened[2:])
	}

	// Viewer failures are only fatal when nothing was saved.
	fail := &Static{Open: func(context.Context, string) error { return errors.New("no display") }}
	var logs bytes.Buffer
	saved := filepath.Join(t.TempDir(), "headless.png")
	if err := fail.Render(context.Background(), testSeries, Options{Output: saved, Show: true, Logger: log.New(&logs)}); err != nil {
		t.Errorf("viewer failure after saving %s: %v", saved, err)
	}
	if _, err := os.Stat(saved); err != nil {
		t.Errorf("chart not saved: %v", err)
	}
	if !bytes.Contains(logs.Bytes(), []byte("cannot display chart")) {
		t.Errorf("viewer failure not logged:\n%s", logs.String())
	}
	err := fail.Render(context.Background(), testSeries, Options{Show: true, Logger: log.New(&logs)})
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Errorf("got %v, want viewer failure without Output", err)
	}
}
