// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/hsvcube/math32"
)

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// Pos is the position of center of element (relative to parent)
	Pos math32.Vector3 `json:"pos" yaml:"pos" toml:"pos"`

	// Scale is the scale (relative to parent)
	Scale math32.Vector3 `json:"scale" yaml:"scale" toml:"scale"`

	// Quat is the node rotation specified as a Quat (relative to parent)
	Quat math32.Quat `json:"quat" yaml:"quat" toml:"quat"`
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// SetAxisRotation sets the rotation of the pose
// from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// SetAxisRotationRad sets the rotation of the pose
// from local axis and angle in radians.
func (ps *Pose) SetAxisRotationRad(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), angle)
}

// Transform returns the given local point transformed by the
// scale, rotation and position of this pose, in that order.
func (ps *Pose) Transform(pt math32.Vector3) math32.Vector3 {
	p := ps.Defaulted()
	sc := math32.Vec3(pt.X*p.Scale.X, pt.Y*p.Scale.Y, pt.Z*p.Scale.Z)
	return sc.MulQuat(p.Quat).Add(p.Pos)
}

// Defaulted returns a copy of the pose with [Pose.Defaults] applied.
func (ps Pose) Defaulted() Pose {
	ps.Defaults()
	return ps
}
