// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cloudio saves and loads HSV layouts as plain documents
// in JSON, YAML or TOML, for consumption by external renderers.
package cloudio

import (
	"cogentcore.org/hsvcube/colors"
	"cogentcore.org/hsvcube/hsvcube"
	"cogentcore.org/hsvcube/math32"
	"cogentcore.org/hsvcube/xyz"
)

// Point is the serialized form of a [hsvcube.Sample].
type Point struct {
	Index                int            `json:"index" yaml:"index" toml:"index"`
	Color                string         `json:"color" yaml:"color" toml:"color"`
	Position             math32.Vector3 `json:"position" yaml:"position" toml:"position"`
	H                    float32        `json:"h" yaml:"h" toml:"h"`
	S                    float32        `json:"s" yaml:"s" toml:"s"`
	V                    float32        `json:"v" yaml:"v" toml:"v"`
	ForceShowOnHueFilter bool           `json:"forceShowOnHueFilter" yaml:"forceShowOnHueFilter" toml:"forceShowOnHueFilter"`
}

// Axis is the serialized form of an [hsvcube.AxisSpec].
type Axis struct {
	Origin math32.Vector3 `json:"origin" yaml:"origin" toml:"origin"`
	Dir    math32.Vector3 `json:"dir" yaml:"dir" toml:"dir"`
	Length float32        `json:"length" yaml:"length" toml:"length"`
	Color  string         `json:"color" yaml:"color" toml:"color"`
	Model  string         `json:"model" yaml:"model" toml:"model"`
}

// Tick is the serialized form of an [hsvcube.TickSpec].
type Tick struct {
	Axis      int            `json:"axis" yaml:"axis" toml:"axis"`
	Name      string         `json:"name" yaml:"name" toml:"name"`
	Value     float32        `json:"value" yaml:"value" toml:"value"`
	Color     string         `json:"color" yaml:"color" toml:"color"`
	Position  math32.Vector3 `json:"position" yaml:"position" toml:"position"`
	RotationY float32        `json:"rotationY" yaml:"rotationY" toml:"rotationY"`
	Model     string         `json:"model" yaml:"model" toml:"model"`
}

// Ring is the serialized form of the hue ring polyline.
type Ring struct {
	Points  []math32.Vector3 `json:"points" yaml:"points" toml:"points"`
	Colors  []string         `json:"colors" yaml:"colors" toml:"colors"`
	Width   float32          `json:"width" yaml:"width" toml:"width"`
	Visible bool             `json:"visible" yaml:"visible" toml:"visible"`
	Model   string           `json:"model" yaml:"model" toml:"model"`
}

// Document is a complete serialized HSV layout.
type Document struct {

	// Steps is the resolution of the layout.
	Steps int `json:"steps" yaml:"steps" toml:"steps"`

	// Sorted is whether Points are in color order, the order in
	// which they are assigned to handles, instead of generation order.
	Sorted bool `json:"sorted" yaml:"sorted" toml:"sorted"`

	Points []Point `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	Axes   []Axis  `json:"axes,omitempty" yaml:"axes,omitempty" toml:"axes,omitempty"`
	Ticks  []Tick  `json:"ticks,omitempty" yaml:"ticks,omitempty" toml:"ticks,omitempty"`
	Ring   *Ring   `json:"ring,omitempty" yaml:"ring,omitempty" toml:"ring,omitempty"`
}

// Contents selects which parts of a layout go into a [Document].
type Contents int32

const (
	// ContentsSamples includes the sample points.
	ContentsSamples Contents = 1 << iota

	// ContentsAxes includes the axes, ticks and hue ring.
	ContentsAxes

	// ContentsAll includes everything.
	ContentsAll = ContentsSamples | ContentsAxes
)

// NewDocument returns the document for the given layout with the
// given contents. If sorted, points are in color order.
func NewDocument(ly hsvcube.Layout, contents Contents, sorted bool) *Document {
	doc := &Document{Steps: ly.Steps(), Sorted: sorted}
	if contents&ContentsSamples != 0 {
		samples := ly.Samples()
		if sorted {
			hsvcube.SortSamples(samples)
		}
		doc.Points = make([]Point, len(samples))
		for i, s := range samples {
			doc.Points[i] = NewPoint(i, s)
		}
	}
	if contents&ContentsAxes != 0 {
		for _, as := range ly.AxisSpecs() {
			doc.Axes = append(doc.Axes, Axis{
				Origin: as.Origin, Dir: as.Dir, Length: as.Length,
				Color: colors.HexString(as.Color), Model: as.Model,
			})
		}
		for _, ts := range ly.TickSpecs() {
			doc.Ticks = append(doc.Ticks, Tick{
				Axis: int(ts.Axis), Name: ts.Name, Value: ts.Value,
				Color: colors.HexString(ts.Color), Position: ts.Pos,
				RotationY: ts.RotationY, Model: ts.Model,
			})
		}
		doc.Ring = NewRing(ly.HueRing())
	}
	return doc
}

// NewPoint returns the serialized form of the given sample at index i.
func NewPoint(i int, s hsvcube.Sample) Point {
	return Point{
		Index:                i,
		Color:                colors.HexString(s.Color),
		Position:             s.Position,
		H:                    s.H,
		S:                    s.S,
		V:                    s.V,
		ForceShowOnHueFilter: s.ForceShowOnHueFilter,
	}
}

// Sample returns the sample that the point was made from.
func (pt Point) Sample() (hsvcube.Sample, error) {
	c, err := colors.ParseHex(pt.Color)
	if err != nil {
		return hsvcube.Sample{}, err
	}
	return hsvcube.Sample{
		Color:                c,
		Position:             pt.Position,
		H:                    pt.H,
		S:                    pt.S,
		V:                    pt.V,
		ForceShowOnHueFilter: pt.ForceShowOnHueFilter,
	}, nil
}

// NewRing returns the serialized form of the given polyline.
func NewRing(ln *xyz.Lines) *Ring {
	return &Ring{
		Points:  ln.Points,
		Colors:  ln.VertexHex(),
		Width:   ln.Width,
		Visible: ln.IsVisible(),
		Model:   ln.Model,
	}
}

// Samples returns the samples of all points in the document.
func (doc *Document) Samples() ([]hsvcube.Sample, error) {
	samples := make([]hsvcube.Sample, len(doc.Points))
	for i, pt := range doc.Points {
		s, err := pt.Sample()
		if err != nil {
			return nil, err
		}
		samples[i] = s
	}
	return samples, nil
}
