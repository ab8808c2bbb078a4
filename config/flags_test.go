// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFlags(t *testing.T) {
	cfg := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, AddFlags(fs, cfg))

	f := fs.Lookup("steps")
	require.NotNil(t, f)
	assert.Equal(t, "s", f.Shorthand)
	assert.Equal(t, "7", f.DefValue)
	assert.Equal(t, "the number of discrete value levels of the layout", f.Usage)

	f = fs.Lookup("background")
	require.NotNil(t, f)
	assert.Equal(t, "", f.Shorthand)
	assert.Equal(t, "black", f.DefValue)
	assert.Nil(t, fs.Lookup("preview"))

	require.NoError(t, fs.Parse([]string{"-s", "5", "--view", "top", "--cube-size", "2.5", "--sorted=false", "-o", "out.json"}))
	assert.Equal(t, 5, cfg.Steps)
	assert.Equal(t, "top", cfg.Preview.View)
	assert.Equal(t, float32(2.5), cfg.CubeSize)
	assert.False(t, cfg.Sorted)
	assert.Equal(t, "out.json", cfg.Output)
	assert.Equal(t, 800, cfg.Preview.Width)
}

func TestAddFlagsErrors(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	assert.Error(t, AddFlags(fs, Config{}))

	type bad struct {
		Sizes []int `flag:"sizes"`
	}
	assert.Error(t, AddFlags(fs, &bad{}))
}

func TestSetFromFlags(t *testing.T) {
	bound := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var verbose bool
	fs.BoolVarP(&verbose, "verbose", "v", false, "")
	require.NoError(t, AddFlags(fs, bound))
	require.NoError(t, fs.Parse([]string{"-v", "--view", "front", "--height", "300"}))

	// values from a config file are kept unless a flag was set
	cfg := New()
	cfg.Steps = 9
	cfg.Preview.View = "top"
	require.NoError(t, SetFromFlags(cfg, fs))
	assert.Equal(t, 9, cfg.Steps)
	assert.Equal(t, "front", cfg.Preview.View)
	assert.Equal(t, 300, cfg.Preview.Height)
	assert.Equal(t, 800, cfg.Preview.Width)
}
