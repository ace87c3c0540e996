// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdfmt

import (
	"io"
	"os"
	"strings"
)

// A Files reads one series per input file from a sequence of result
// files.
//
// Files stops at the first file that fails to open, decode or
// validate; there is no partial-failure tolerance. If AllowLabels is
// true, entries in Paths may be of the form label=path, and label
// overrides the series name.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// Metric is the metric to extract from each file.
	Metric string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin. Stdin is always decoded as JSON.
	AllowStdin bool

	// AllowLabels indicates that custom labels are allowed in
	// Paths.
	AllowLabels bool

	// Stdin replaces os.Stdin when non-nil.
	Stdin io.Reader

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []input

	series *Series
	path   string
	err    error
}

type input struct {
	path    string
	label   string
	isStdin bool
}

// init does first-use initialization of f.
func (f *Files) init() {
	f.inputs = []input{}
	for _, path := range f.Paths {
		label := ""
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
		}
		isStdin := f.AllowStdin && path == "-"
		f.inputs = append(f.inputs, input{path, label, isStdin})
	}
}

// Scan reads the next file in the sequence and reports whether a
// series was read. The caller should use the Series method to get
// the series. If Scan reaches the end of the file sequence, or if
// any file fails, it returns false. In this case, the caller should
// use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}
	if len(f.inputs) == 0 {
		f.series = nil
		return false
	}
	inp := f.inputs[0]
	f.inputs = f.inputs[1:]
	f.path = inp.path

	var s *Series
	var err error
	if inp.isStdin {
		s, err = f.readStdin()
	} else {
		s, err = ParseFile(inp.path, f.Metric)
	}
	if err != nil {
		f.series, f.err = nil, err
		return false
	}
	if inp.label != "" {
		s.Name = inp.label
	}
	f.series = s
	return true
}

func (f *Files) readStdin() (*Series, error) {
	r := f.Stdin
	if r == nil {
		r = os.Stdin
	}
	doc, err := Decode(r, "<stdin>", JSON)
	if err != nil {
		return nil, err
	}
	return NewSeries(doc, "stdin", f.Metric)
}

// Series returns the series that was just read by Scan.
func (f *Files) Series() *Series {
	return f.series
}

// Path returns the path of the file most recently read by Scan,
// whether or not it was read successfully.
func (f *Files) Path() string {
	return f.path
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file, or if Scan has not yet
// returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}

// ReadAll reads every file in f and returns the series in order.
func (f *Files) ReadAll() ([]*Series, error) {
	var all []*Series
	for f.Scan() {
		all = append(all, f.Series())
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return all, nil
}
