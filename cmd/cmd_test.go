// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/hsvcube/cloudio"
	"cogentcore.org/hsvcube/config"
	"cogentcore.org/hsvcube/hsvcube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs the tool with the given arguments and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewApp(&buf).Command()
	root.SetArgs(append([]string{"-q"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestCount(t *testing.T) {
	out, err := run(t, "count")
	require.NoError(t, err)
	assert.Equal(t, "343\n", out)

	out, err = run(t, "count", "-s", "3")
	require.NoError(t, err)
	assert.Equal(t, "27\n", out)
}

func TestInvalidSteps(t *testing.T) {
	_, err := run(t, "count", "-s", "1")
	assert.ErrorIs(t, err, hsvcube.ErrInvalidResolution)

	_, err = run(t, "samples", "-f", "xml")
	assert.Error(t, err)
}

func TestSamples(t *testing.T) {
	out, err := run(t, "samples", "-s", "2", "-f", "yaml")
	require.NoError(t, err)
	doc, err := cloudio.Read(strings.NewReader(out), cloudio.YAML)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Steps)
	assert.True(t, doc.Sorted)
	assert.Len(t, doc.Points, hsvcube.Count(2))
	assert.Empty(t, doc.Ticks)

	out, err = run(t, "axes", "-s", "3")
	require.NoError(t, err)
	doc, err = cloudio.Read(strings.NewReader(out), cloudio.JSON)
	require.NoError(t, err)
	assert.Empty(t, doc.Points)
	assert.Len(t, doc.Axes, 2)
	require.NotNil(t, doc.Ring)
}

func TestLayoutFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "layout.toml")
	out, err := run(t, "layout", "-s", "2", "-o", fn, "--sorted=false")
	require.NoError(t, err)
	assert.Empty(t, out)

	doc, err := cloudio.Open(fn)
	require.NoError(t, err)
	assert.False(t, doc.Sorted)
	samples, err := doc.Samples()
	require.NoError(t, err)
	want, err := hsvcube.Samples(2)
	require.NoError(t, err)
	assert.Equal(t, len(want), len(samples))
	assert.Equal(t, want[0].Color, samples[0].Color)
}

func TestPreview(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preview.png")
	_, err := run(t, "preview", "-s", "3", "--width", "120", "--height", "90", "--view", "top", "-o", fn)
	require.NoError(t, err)

	fp, err := os.Open(fn)
	require.NoError(t, err)
	defer fp.Close()
	img, err := png.Decode(fp)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())

	_, err = run(t, "preview", "--background", "notacolor")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "hsvcube.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Steps = 4\n"), 0o644))

	out, err := run(t, "count", "-c", fn)
	require.NoError(t, err)
	assert.Equal(t, "64\n", out)

	out, err = run(t, "count", "-c", fn, "-s", "5")
	require.NoError(t, err)
	assert.Equal(t, "125\n", out, "flags override the config file")

	out, err = run(t, "config", "-c", fn, "--view", "front")
	require.NoError(t, err)
	saved := filepath.Join(dir, "saved.toml")
	require.NoError(t, os.WriteFile(saved, []byte(out), 0o644))
	cfg := config.New()
	require.NoError(t, cfg.Open(saved))
	assert.Equal(t, 4, cfg.Steps)
	assert.Equal(t, "front", cfg.Preview.View)
}
