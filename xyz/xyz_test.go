// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
	"testing"

	"cogentcore.org/hsvcube/math32"
	"github.com/stretchr/testify/assert"
)

func tolAssertEqualVector(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, "X")
	assert.InDelta(t, want.Y, got.Y, 1e-4, "Y")
	assert.InDelta(t, want.Z, got.Z, 1e-4, "Z")
}

func TestNodeUserData(t *testing.T) {
	cb := NewCube(2)
	_, ok := cb.UserDataValue("HSV")
	assert.False(t, ok)
	cb.SetUserData("HSV", 42)
	v, ok := cb.UserDataValue("HSV")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	assert.True(t, cb.IsVisible())
	cb.SetVisible(false)
	assert.False(t, cb.IsVisible())
}

func TestPoseTransform(t *testing.T) {
	var ps Pose
	ps.Defaults()
	assert.Equal(t, math32.Vec3(1, 1, 1), ps.Scale)
	assert.True(t, ps.Quat.IsIdentity())

	ps.Pos = math32.Vec3(1, 2, 3)
	tolAssertEqualVector(t, math32.Vec3(2, 2, 3), ps.Transform(math32.Vec3(1, 0, 0)))

	// a quarter turn about Y takes +X to -Z
	ps.SetAxisRotation(0, 1, 0, 90)
	tolAssertEqualVector(t, math32.Vec3(1, 2, 2), ps.Transform(math32.Vec3(1, 0, 0)))

	// zero pose behaves as identity
	var zp Pose
	tolAssertEqualVector(t, math32.Vec3(4, 5, 6), zp.Transform(math32.Vec3(4, 5, 6)))
}

func TestTickPlane(t *testing.T) {
	clr := color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	obj := Builder{}.TickPlane(1, clr, math32.Vec3(1, 2, 3), "HSV", "V", 100.0/3)
	tp, ok := obj.(*TickPlane)
	assert.True(t, ok)
	assert.Equal(t, 1, tp.Axis)
	assert.Equal(t, "V", tp.AxisName)
	assert.Equal(t, "33.33", tp.Text())
	assert.Equal(t, "tick-V-33.33", tp.Name)
	assert.Equal(t, "HSV", tp.Model)
	assert.Equal(t, clr, tp.Material.Color)
	assert.Equal(t, "#dddddd", tp.Material.Hex)
	assert.Equal(t, math32.Vec3(PlaneThickness, PlaneSize, PlaneSize), tp.Size)
	assert.Equal(t, ShapePlane, tp.Shape)
	assert.Equal(t, math32.Vec3(1, 2, 3), tp.Pose.Pos)
}

func TestAxisArrow(t *testing.T) {
	obj := Builder{}.AxisArrow(math32.Vec3(0, 10, 0), math32.Vec3(0, 2, 0), color.RGBA{0xee, 0xee, 0xee, 0xff}, 180, "HSV")
	ar := obj.(*AxisArrow)
	assert.Equal(t, math32.Vec3(0, 1, 0), ar.Dir)
	tolAssertEqualVector(t, math32.Vec3(0, 190, 0), ar.Tip())
	tolAssertEqualVector(t, math32.Vec3(0, 190-ArrowHeadLength, 0), ar.HeadBase())
	assert.Equal(t, "HSV", ar.Model)
}

func TestLines(t *testing.T) {
	ln := NewLines(2)
	assert.Equal(t, 0, ln.NumSegments())
	ln.Add(math32.Vec3(0, 0, 0), color.RGBA{255, 0, 0, 255})
	ln.Add(math32.Vec3(1, 2, 3), color.RGBA{0, 0, 255, 255})
	assert.Equal(t, 1, ln.NumSegments())
	assert.True(t, ln.Material.VertexColors)
	assert.Equal(t, []float32{0, 0, 0, 1, 2, 3}, ln.Positions())
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1}, ln.ColorArray())
	assert.Equal(t, []string{"#ff0000", "#0000ff"}, ln.VertexHex())
}

func TestGroup(t *testing.T) {
	gp := NewGroup("scene")
	a := NewCube(1).SetModel("HSV")
	b := NewCube(1).SetModel("RGB")
	ln := NewLines(1)
	ln.Model = "HSV"
	ln.SetVisible(false)
	gp.Add(a, b, ln)
	assert.Equal(t, 3, gp.Len())
	assert.Len(t, gp.ByModel("HSV"), 2)
	assert.Equal(t, 1, gp.SetModelVisible("HSV", true))
	assert.True(t, ln.IsVisible())
	assert.Equal(t, 2, gp.SetModelVisible("HSV", false))
	assert.True(t, b.IsVisible())
}
