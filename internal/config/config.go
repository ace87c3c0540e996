// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads rdplot defaults from a TOML file.
//
// A config file looks like
//
//	metric  = "msssim"
//	backend = "html"
//	axes    = [0, 1, 8, 20]
//	width   = 12
//	height  = 8
//	show    = false
//
// Every key is optional; missing keys keep the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/codec-eval/rdplot/rdchart"
)

const appName = "rdplot"

// Config holds the settings a config file may override.
type Config struct {
	Metric  string  `toml:"metric"`
	Title   string  `toml:"title"`
	Backend string  `toml:"backend"`
	Axes    []int   `toml:"axes"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Show    bool    `toml:"show"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Metric:  "psnr",
		Backend: rdchart.Default,
		Axes:    append([]int(nil), rdchart.DefaultAxes...),
		Width:   rdchart.DefaultWidth,
		Height:  rdchart.DefaultHeight,
		Show:    true,
	}
}

// Load reads the config file at path on top of Default. Unknown
// keys are an error.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return c, nil
}

// LoadDefault reads the config file at DefaultPath if there is one.
// It returns the path that was read, or "" if none was.
func LoadDefault() (Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	c, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	return c, path, nil
}

// DefaultPath returns the config file location using the XDG
// standard (~/.config/rdplot/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
