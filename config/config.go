// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the hsvcube tool.
package config

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/hsvcube/base/errors"
	"cogentcore.org/hsvcube/cloudio"
	"cogentcore.org/hsvcube/hsvcube"
	"cogentcore.org/hsvcube/render"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct
// that contains all of the configuration
// options for the hsvcube tool.
type Config struct {

	// the number of discrete value levels of the layout
	Steps int `default:"7" flag:"s,steps" desc:"the number of discrete value levels of the layout"`

	// the edge length of each sample cube
	CubeSize float32 `default:"4" flag:"cube-size" desc:"the edge length of each sample cube"`

	// the encoding of exported documents: json, yaml or toml
	Format string `default:"json" flag:"f,format" desc:"the encoding of exported documents: json, yaml or toml"`

	// the output file; if not specified, documents go to standard output
	Output string `flag:"o,output" desc:"the output file; if not specified, documents go to standard output"`

	// whether to export samples in color order, as they are assigned to handles
	Sorted bool `default:"true" flag:"sorted" desc:"whether to export samples in color order, as they are assigned to handles"`

	// the configuration options for the preview command
	Preview Preview `toml:"preview"`
}

// Preview contains the configuration options for the preview command.
type Preview struct {

	// the width of the preview image in pixels
	Width int `default:"800" flag:"width" desc:"the width of the preview image in pixels"`

	// the height of the preview image in pixels
	Height int `default:"800" flag:"height" desc:"the height of the preview image in pixels"`

	// the projection: front, top or iso
	View string `default:"iso" flag:"view" desc:"the projection: front, top or iso"`

	// whether to draw the axes, ticks and hue ring
	Axes bool `default:"true" flag:"axes" desc:"whether to draw the axes, ticks and hue ring"`

	// the background color name (see golang.org/x/image/colornames) or #rrggbb hex value
	Background string `default:"black" flag:"background" desc:"the background color name or #rrggbb hex value"`
}

// New returns a new [Config] with all of its default values set.
func New() *Config {
	cfg := &Config{}
	errors.Must(SetFromDefaults(cfg))
	return cfg
}

// Validate returns an error if the config cannot be used.
func (cfg *Config) Validate() error {
	if _, err := hsvcube.NewLayout(cfg.Steps); err != nil {
		return err
	}
	if _, err := cloudio.ParseFormat(cfg.Format); err != nil {
		return err
	}
	if _, err := render.ParseView(cfg.Preview.View); err != nil {
		return err
	}
	if cfg.Preview.Width <= 0 || cfg.Preview.Height <= 0 {
		return fmt.Errorf("config: preview size must be positive, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.CubeSize <= 0 {
		return fmt.Errorf("config: cube size must be positive, got %g", cfg.CubeSize)
	}
	return nil
}

// Layout returns the [hsvcube.Layout] for the configured steps.
func (cfg *Config) Layout() (hsvcube.Layout, error) {
	return hsvcube.NewLayout(cfg.Steps)
}

// Open reads the config from the given TOML file, on top of the
// current values. Unknown keys are an error.
func (cfg *Config) Open(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	err = toml.NewDecoder(fp).DisallowUnknownFields().Decode(cfg)
	if err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return cfg.Write(fp)
}

// Write writes the config to w as TOML.
func (cfg *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}
