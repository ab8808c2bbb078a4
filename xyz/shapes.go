// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/hsvcube/math32"
)

const (
	// PlaneSize is the edge length of a square tick plane.
	PlaneSize = 8.0

	// PlaneThickness is the thickness of a tick plane.
	PlaneThickness = 1.0

	// ArrowHeadLength is the length of the cone at the tip of an [AxisArrow].
	ArrowHeadLength = 6.0
)

// TickPlane is a thin labeled plane marking a value along an axis.
type TickPlane struct {
	Solid

	// Axis is the index of the axis this tick belongs to.
	Axis int `json:"axis" yaml:"axis" toml:"axis"`

	// AxisName is the short name of the axis, shown with the value.
	AxisName string `json:"axisName" yaml:"axisName" toml:"axisName"`

	// Value is the axis value marked by this tick.
	Value float32 `json:"value" yaml:"value" toml:"value"`
}

// NewTickPlane returns a new tick plane for the given axis index,
// centered at the given position, labeled with the given axis name
// and value. The plane faces along +X until rotated.
func NewTickPlane(axis int, clr color.RGBA, pos math32.Vector3, model, axisName string, value float32) *TickPlane {
	tp := &TickPlane{Axis: axis, AxisName: axisName, Value: value}
	tp.Shape = ShapePlane
	tp.Size = math32.Vec3(PlaneThickness, PlaneSize, PlaneSize)
	tp.Defaults()
	tp.SetColor(clr).SetPos(pos).SetModel(model)
	tp.Name = fmt.Sprintf("tick-%s-%s", axisName, tp.Text())
	return tp
}

// Text returns the label text drawn on the tick plane.
func (tp *TickPlane) Text() string {
	return fmt.Sprintf("%g", math32.Truncate(tp.Value, 4))
}

// AxisArrow is a line with an arrow head, from an origin along a direction.
type AxisArrow struct {
	NodeBase

	// Origin is the start point of the arrow.
	Origin math32.Vector3 `json:"origin" yaml:"origin" toml:"origin"`

	// Dir is the unit direction of the arrow.
	Dir math32.Vector3 `json:"dir" yaml:"dir" toml:"dir"`

	// Length is the total length of the arrow including its head.
	Length float32 `json:"length" yaml:"length" toml:"length"`

	// Material contains the color of the arrow.
	Material Material `json:"material" yaml:"material" toml:"material"`
}

// NewAxisArrow returns a new arrow from origin along dir
// (normalized) with the given color and length.
func NewAxisArrow(origin, dir math32.Vector3, clr color.RGBA, length float32, model string) *AxisArrow {
	ar := &AxisArrow{Origin: origin, Dir: dir.Normal(), Length: length}
	ar.Model = model
	ar.Pose.Pos = origin
	ar.Pose.Defaults()
	ar.Material.SetColor(clr)
	return ar
}

// Tip returns the end point of the arrow.
func (ar *AxisArrow) Tip() math32.Vector3 {
	return ar.Origin.Add(ar.Dir.MulScalar(ar.Length))
}

// HeadBase returns the point where the shaft ends and the head begins.
func (ar *AxisArrow) HeadBase() math32.Vector3 {
	return ar.Origin.Add(ar.Dir.MulScalar(math32.Max(0, ar.Length-ArrowHeadLength)))
}

// Builder makes the standard tick planes and axis arrows.
// Its methods match the collaborator functions that layouts use
// to create axis geometry; the zero value is ready to use.
type Builder struct{}

// TickPlane returns a new [TickPlane]; see [NewTickPlane].
func (Builder) TickPlane(axis int, clr color.RGBA, pos math32.Vector3, model, axisName string, value float32) Object {
	return NewTickPlane(axis, clr, pos, model, axisName, value)
}

// AxisArrow returns a new [AxisArrow]; see [NewAxisArrow].
func (Builder) AxisArrow(origin, dir math32.Vector3, clr color.RGBA, length float32, model string) Object {
	return NewAxisArrow(origin, dir, clr, length, model)
}
