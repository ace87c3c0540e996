// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RateKey is the results key holding the rate axis.
const RateKey = "bpp"

// A Document is a decoded result file.
type Document struct {
	// Name is the display name of the codec run. It may be empty,
	// in which case callers fall back to the file stem.
	Name string `json:"name" yaml:"name"`

	// Results maps metric names to per-rate-point values.
	Results Metrics `json:"results" yaml:"results"`
}

// Metrics is an ordered mapping from metric name to values. The zero
// Metrics is absent: Present reports false until it has been decoded
// from an object.
type Metrics struct {
	keys   []string
	values map[string][]float64
}

// NewMetrics returns a Metrics mapping keys[i] to values[i], in
// the order of keys.
func NewMetrics(keys []string, values ...[]float64) Metrics {
	if len(keys) != len(values) {
		panic("rdfmt.NewMetrics: keys and values differ in length")
	}
	m := Metrics{values: make(map[string][]float64, len(keys))}
	for i, k := range keys {
		m.set(k, values[i])
	}
	return m
}

func (m *Metrics) set(key string, vs []float64) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = vs
}

// Present reports whether the results mapping was present in the
// document.
func (m Metrics) Present() bool {
	return m.values != nil
}

// Keys returns the metric names in document order.
func (m Metrics) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Get returns the values for metric name.
func (m Metrics) Get(name string) ([]float64, bool) {
	vs, ok := m.values[name]
	return vs, ok
}

// UnmarshalJSON decodes a JSON object while keeping its key order.
func (m *Metrics) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		// null leaves the mapping absent.
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("results: want object, got %v", tok)
	}
	*m = Metrics{values: make(map[string][]float64)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var vs []float64
		if err := dec.Decode(&vs); err != nil {
			return fmt.Errorf("results.%s: %w", key, err)
		}
		m.set(key, vs)
	}
	_, err = dec.Token()
	return err
}

// UnmarshalYAML decodes a YAML mapping while keeping its key order.
func (m *Metrics) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: results: want mapping", value.Line)
	}
	*m = Metrics{values: make(map[string][]float64)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		var vs []float64
		if err := v.Decode(&vs); err != nil {
			return fmt.Errorf("results.%s: %w", k.Value, err)
		}
		m.set(k.Value, vs)
	}
	return nil
}

// A Format is an encoding of result documents.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf returns the Format implied by path's extension. Anything
// other than .yaml or .yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Decode reads a result document in format f from r. fileName is
// used in error messages; it is purely diagnostic.
//
// Decode only checks that r holds a well-formed document. Use
// NewSeries to validate its contents.
func Decode(r io.Reader, fileName string, f Format) (*Document, error) {
	doc := new(Document)
	var err error
	switch f {
	case YAML:
		err = yaml.NewDecoder(r).Decode(doc)
		if err == io.EOF {
			// An empty YAML stream is a valid, empty document.
			err = nil
		}
	default:
		dec := json.NewDecoder(r)
		err = dec.Decode(doc)
		if err == nil {
			// The document must be the only value in the file.
			var extra json.RawMessage
			switch xerr := dec.Decode(&extra); xerr {
			case io.EOF:
			case nil:
				err = fmt.Errorf("unexpected data after document at offset %d", dec.InputOffset()-int64(len(extra)))
			default:
				err = xerr
			}
		}
	}
	if err != nil {
		return nil, &DecodeError{FileName: fileName, Err: err}
	}
	return doc, nil
}
