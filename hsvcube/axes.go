// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsvcube

import (
	"image/color"
	"math"

	"cogentcore.org/hsvcube/colors"
	"cogentcore.org/hsvcube/math32"
	"cogentcore.org/hsvcube/xyz"
)

// TickAxis is the axis a tick belongs to.
type TickAxis int

const (
	// AxisS is the saturation axis.
	AxisS TickAxis = iota

	// AxisV is the value axis.
	AxisV

	// AxisH is the hue ring.
	AxisH
)

// Name returns the short axis name shown on its ticks.
func (ta TickAxis) Name() string {
	switch ta {
	case AxisS:
		return "S"
	case AxisV:
		return "V"
	case AxisH:
		return "H"
	}
	return ""
}

var (
	// SaturationAxisColor is the color of the saturation axis arrow.
	SaturationAxisColor = colors.FromHex(0xbbbbbb)

	// ValueAxisColor is the color of the value axis arrow.
	ValueAxisColor = colors.FromHex(0xeeeeee)

	// TickColor is the color of the saturation and value ticks.
	TickColor = colors.FromHex(0xdddddd)
)

// RingLineWidth is the line width of the hue ring.
const RingLineWidth = 2

// AxisSpec specifies a linear axis arrow.
type AxisSpec struct {
	Dir    math32.Vector3
	Origin math32.Vector3
	Length float32
	Color  color.RGBA
	Model  string
}

// TickSpec specifies a tick plane on an axis.
type TickSpec struct {
	Axis  TickAxis
	Color color.RGBA
	Pos   math32.Vector3
	Model string
	Name  string
	Value float32

	// RotationY is the rotation about the Y axis in radians
	// applied after the plane is made.
	RotationY float32
}

// Builder makes the renderable objects for axes and ticks.
// [xyz.Builder] is the standard implementation.
type Builder interface {
	TickPlane(axis int, clr color.RGBA, pos math32.Vector3, model, axisName string, value float32) xyz.Object
	AxisArrow(origin, dir math32.Vector3, clr color.RGBA, length float32, model string) xyz.Object
}

// AxisSpecs returns the saturation axis, running along +X at the top
// of the cylinder, and the value axis, running up the Y axis.
// The zero Layout has no axes.
func (ly Layout) AxisSpecs() []AxisSpec {
	if !ly.IsValid() {
		return nil
	}
	return []AxisSpec{
		{
			Dir:    math32.Vec3(1, 0, 0),
			Origin: math32.Vec3(0, OffsetY+Height, 0),
			Length: MaxRadius + 30,
			Color:  SaturationAxisColor,
			Model:  Model,
		},
		{
			Dir:    math32.Vec3(0, 1, 0),
			Origin: math32.Vec3(0, OffsetY, 0),
			Length: Height + 40,
			Color:  ValueAxisColor,
			Model:  Model,
		},
	}
}

// TickSpecs returns the ticks in order: one saturation tick per level
// along the top of hue 0, one value tick per level beside the Y axis
// at hue 180, and RingCount hue ticks around the full ring, each
// turned to face along its hue direction. The zero Layout has no ticks.
func (ly Layout) TickSpecs() []TickSpec {
	if !ly.IsValid() {
		return nil
	}
	levels := ly.Levels()
	const half = xyz.PlaneSize / 2
	ticks := make([]TickSpec, 0, 2*(levels+1)+RingCount)
	for i := 0; i <= levels; i++ {
		saturation := ly.Level(i)
		pos := Position(0, saturation, 100)
		pos.X += xyz.PlaneThickness / 2
		pos.Y += half
		ticks = append(ticks, TickSpec{Axis: AxisS, Color: TickColor, Pos: pos, Model: Model, Name: AxisS.Name(), Value: float32(saturation)})
	}
	for i := 0; i <= levels; i++ {
		value := ly.Level(i)
		pos := Position(180, 0, value)
		pos.X -= half
		ticks = append(ticks, TickSpec{Axis: AxisV, Color: TickColor, Pos: pos, Model: Model, Name: AxisV.Name(), Value: float32(value)})
	}
	for i := 0; i < RingCount; i++ {
		degree := 360 / float64(RingCount) * float64(i)
		rad := degree * math.Pi / 180
		pos := Position(degree, 100, 100)
		pos.X += float32(half * math.Cos(rad))
		pos.Z += float32(half * math.Sin(rad))
		pos.Y += half
		ticks = append(ticks, TickSpec{
			Axis: AxisH, Color: colors.FromHSV(degree, 100, 100), Pos: pos,
			Model: Model, Name: AxisH.Name(), Value: float32(degree), RotationY: float32(-rad),
		})
	}
	return ticks
}

// HueRing returns the closed polyline around the top of the cylinder,
// with Levels*RingCount segments. Its vertex colors sweep the display
// rainbow in HSL, independent of the sample colors. The ring starts
// hidden, and has no vertices for the zero Layout.
func (ly Layout) HueRing() *xyz.Lines {
	ln := xyz.NewLines(RingLineWidth)
	ln.Name = "hue-ring"
	ln.Model = Model
	ln.SetVisible(false)
	if !ly.IsValid() {
		return ln
	}
	n := ly.Levels() * RingCount
	for i := 0; i <= n; i++ {
		degree := 360 / float64(n) * float64(i)
		hue := float64(i) / float64(n)
		ln.Add(Position(degree, 100, 100), colors.FromHSL(360*hue, 1, 0.5))
	}
	return ln
}

// Axes builds the axis objects (saturation arrow, value arrow,
// hue ring) and the tick objects (see [Layout.TickSpecs]) using
// the given builder. The zero Layout builds nothing.
func (ly Layout) Axes(b Builder) (axes, ticks []xyz.Object) {
	if !ly.IsValid() {
		return nil, nil
	}
	for _, as := range ly.AxisSpecs() {
		axes = append(axes, b.AxisArrow(as.Origin, as.Dir, as.Color, as.Length, as.Model))
	}
	axes = append(axes, ly.HueRing())
	for _, ts := range ly.TickSpecs() {
		obj := b.TickPlane(int(ts.Axis), ts.Color, ts.Pos, ts.Model, ts.Name, ts.Value)
		if ts.RotationY != 0 {
			obj.AsNode().Pose.SetAxisRotationRad(0, 1, 0, ts.RotationY)
		}
		ticks = append(ticks, obj)
	}
	return axes, ticks
}
