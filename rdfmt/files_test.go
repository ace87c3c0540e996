// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdfmt

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestFiles(t *testing.T) {
	// Switch to testdata directory.
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldDir)
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}

	check := func(f *Files, want ...string) {
		t.Helper()
		for f.Scan() {
			if len(want) == 0 {
				t.Errorf("got series, want end of stream")
				return
			}
			if got := f.Series().Name; got != want[0] {
				t.Errorf("got %q, want %q", got, want[0])
			}
			want = want[1:]
		}

		err := f.Err()
		wantErr := ""
		if len(want) == 1 && strings.HasPrefix(want[0], "err ") {
			wantErr = want[0][len("err "):]
			want = want[1:]
		}
		if err == nil && wantErr != "" {
			t.Errorf("got success, want error %s", wantErr)
		} else if err != nil && wantErr == "" {
			t.Errorf("got error %s", err)
		} else if err != nil && !strings.Contains(err.Error(), wantErr) {
			t.Errorf("got error %s, want error containing %s", err, wantErr)
		}

		if len(want) != 0 {
			t.Errorf("got end of stream, want %v", want)
		}
	}

	// Basic tests.
	check(
		&Files{Paths: []string{"bmshj2018.json", "anonymous.json"}, Metric: "psnr"},
		"bmshj2018-factorized", "anonymous",
	)
	check(
		&Files{Paths: []string{"bmshj2018.json", "cheng2020.yaml"}, Metric: "msssim"},
		"bmshj2018-factorized", "cheng2020-anchor",
	)

	// The first failure ends the stream.
	check(
		&Files{Paths: []string{"anonymous.json", "nobpp.json", "bmshj2018.json"}, Metric: "psnr"},
		"anonymous", `err invalid file "nobpp.json"`,
	)
	check(
		&Files{Paths: []string{"bmshj2018.json", "anonymous.json"}, Metric: "msssim"},
		"bmshj2018-factorized", `err metric "msssim" not available`,
	)

	// Labels.
	check(
		&Files{Paths: []string{"ours=anonymous.json", "bmshj2018.json"}, Metric: "psnr", AllowLabels: true},
		"ours", "bmshj2018-factorized",
	)
	check(
		&Files{Paths: []string{"ours=anonymous.json"}, Metric: "psnr"},
		"err open ours=anonymous.json",
	)

	// Stdin.
	check(
		&Files{
			Paths:      []string{"-", "anonymous.json"},
			Metric:     "psnr",
			AllowStdin: true,
			Stdin:      strings.NewReader(`{"results": {"bpp": [1], "psnr": [40]}}`),
		},
		"stdin", "anonymous",
	)
	check(
		&Files{
			Paths:       []string{"piped=-"},
			Metric:      "psnr",
			AllowStdin:  true,
			AllowLabels: true,
			Stdin:       strings.NewReader(`{"results": {"bpp": [1], "psnr": [40]}}`),
		},
		"piped",
	)
	check(
		&Files{Paths: []string{"-"}, Metric: "psnr", AllowStdin: true, Stdin: strings.NewReader("not json")},
		`err error reading file "<stdin>"`,
	)
}

func TestFilesReadAll(t *testing.T) {
	f := &Files{Paths: []string{"testdata/bmshj2018.json", "testdata/malformed.json"}, Metric: "psnr"}
	all, err := f.ReadAll()
	if all != nil {
		t.Errorf("got %d series alongside an error, want none", len(all))
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want *DecodeError", err)
	}
	if f.Path() != "testdata/malformed.json" {
		t.Errorf("Path() = %q, want the failing file", f.Path())
	}
}
