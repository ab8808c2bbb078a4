// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/hsvcube/colors"
	"cogentcore.org/hsvcube/math32"
)

// Lines is a connected polyline through a sequence of points,
// optionally with a color per vertex.
type Lines struct {
	NodeBase

	// Points are the vertices of the polyline, in order.
	Points []math32.Vector3 `json:"points" yaml:"points" toml:"points"`

	// Colors are the per-vertex colors, parallel to Points when
	// [Material.VertexColors] is set.
	Colors []color.RGBA `json:"-" yaml:"-" toml:"-"`

	// Width is the line width in pixels.
	Width float32 `json:"width" yaml:"width" toml:"width"`

	// Material contains the base color of the line.
	Material Material `json:"material" yaml:"material" toml:"material"`
}

// NewLines returns a new empty polyline with the given line width
// and a white base color.
func NewLines(width float32) *Lines {
	ln := &Lines{Width: width}
	ln.Pose.Defaults()
	ln.Material.Defaults()
	return ln
}

// Add appends a vertex with the given color, switching the
// material to per-vertex colors.
func (ln *Lines) Add(pt math32.Vector3, clr color.RGBA) {
	ln.Points = append(ln.Points, pt)
	ln.Colors = append(ln.Colors, clr)
	ln.Material.VertexColors = true
}

// NumSegments returns the number of line segments in the polyline.
func (ln *Lines) NumSegments() int {
	return max(len(ln.Points)-1, 0)
}

// Positions returns the vertex positions as a flat x,y,z array,
// the layout used for GPU position buffers.
func (ln *Lines) Positions() []float32 {
	ary := make([]float32, 3*len(ln.Points))
	for i, p := range ln.Points {
		p.ToSlice(ary, 3*i)
	}
	return ary
}

// ColorArray returns the vertex colors as a flat r,g,b array of
// 0-1 normalized values, the layout used for GPU color buffers.
func (ln *Lines) ColorArray() []float32 {
	ary := make([]float32, 3*len(ln.Colors))
	for i, c := range ln.Colors {
		ary[3*i], ary[3*i+1], ary[3*i+2] = colors.Float32(c)
	}
	return ary
}

// VertexHex returns the vertex colors in #rrggbb form.
func (ln *Lines) VertexHex() []string {
	hx := make([]string, len(ln.Colors))
	for i, c := range ln.Colors {
		hx[i] = colors.HexString(c)
	}
	return hx
}
