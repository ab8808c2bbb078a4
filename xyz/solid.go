// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/hsvcube/math32"
)

// Shapes are the standard solid shapes known to renderers.
type Shapes int32

const (
	// ShapeBox is a rectangular cuboid of size [Solid.Size].
	ShapeBox Shapes = iota

	// ShapePlane is a flat box whose thickness is the X size.
	ShapePlane
)

func (sh Shapes) String() string {
	switch sh {
	case ShapeBox:
		return "Box"
	case ShapePlane:
		return "Plane"
	}
	return "Unknown"
}

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and a standard shape of the given size.
type Solid struct {
	NodeBase

	// Shape is the standard shape of this solid.
	Shape Shapes `json:"shape" yaml:"shape" toml:"shape"`

	// Size is the size of the shape along each local dimension.
	Size math32.Vector3 `json:"size" yaml:"size" toml:"size"`

	// Material contains the material properties of the surface.
	Material Material `json:"material" yaml:"material" toml:"material"`
}

// NewSolid returns a new solid of the given shape and size,
// with default pose and material.
func NewSolid(shape Shapes, size math32.Vector3) *Solid {
	sld := &Solid{Shape: shape, Size: size}
	sld.Defaults()
	return sld
}

// NewCube returns a new cube solid with the given edge length.
// Cubes are the visual handles that layout samples are assigned to.
func NewCube(size float32) *Solid {
	return NewSolid(ShapeBox, math32.Vector3Scalar(size))
}

// Defaults sets default initial settings for solid params.
func (sld *Solid) Defaults() {
	sld.Pose.Defaults()
	sld.Material.Defaults()
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(pos math32.Vector3) *Solid {
	sld.Pose.Pos = pos
	return sld
}

// SetColor sets the [Material.Color]
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.SetColor(v)
	return sld
}

// SetModel sets the [NodeBase.Model] group label
func (sld *Solid) SetModel(model string) *Solid {
	sld.Model = model
	return sld
}

// SetAxisRotation sets the [Pose.Quat] rotation of the solid,
// from local axis and angle in degrees.
func (sld *Solid) SetAxisRotation(x, y, z, angle float32) *Solid {
	sld.Pose.SetAxisRotation(x, y, z, angle)
	return sld
}
