// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1e-5

func tolAssertEqualVector(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, standardTol, "X")
	assert.InDelta(t, want.Y, got.Y, standardTol, "Y")
	assert.InDelta(t, want.Z, got.Z, standardTol, "Z")
}

func TestVector3(t *testing.T) {
	v := Vec3(3, 4, 12)
	assert.Equal(t, float32(13), v.Length())
	assert.Equal(t, float32(169), v.LengthSquared())
	assert.Equal(t, Vec3(4, 6, 15), v.Add(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(6, 8, 24), v.MulScalar(2))
	assert.Equal(t, float32(3+8+36), v.Dot(Vec3(1, 2, 3)))
	tolAssertEqualVector(t, Vec3(3.0/13, 4.0/13, 12.0/13), v.Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, "(3, 4, 12)", v.String())

	v.Set(4, 5, 13)
	assert.Equal(t, Vec3(4, 5, 13), v)
	assert.True(t, Vector3{}.IsNil())
	assert.False(t, v.IsNil())
	assert.Equal(t, Vec3(2, 2, 2), Vector3Scalar(2))

	ary := make([]float32, 4)
	Vec3(1, 2, 3).ToSlice(ary, 1)
	assert.Equal(t, []float32{0, 1, 2, 3}, ary)
}

func TestQuat(t *testing.T) {
	var q Quat
	assert.True(t, q.IsNil())
	q.SetIdentity()
	assert.True(t, q.IsIdentity())
	assert.False(t, q.IsNil())
	tolAssertEqualVector(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulQuat(q))

	q = NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	assert.False(t, q.IsIdentity())
	tolAssertEqualVector(t, Vec3(0, 0, -1), Vec3(1, 0, 0).MulQuat(q))
	tolAssertEqualVector(t, Vec3(1, 0, 0), Vec3(0, 0, 1).MulQuat(q))

	q = NewQuatAxisAngle(Vec3(0, 0, 1), Pi)
	tolAssertEqualVector(t, Vec3(-1, 0, 0), Vec3(1, 0, 0).MulQuat(q))
}

func TestMath(t *testing.T) {
	assert.InDelta(t, Pi, DegToRad(180), standardTol)
	assert.InDelta(t, 1, Cos(0), standardTol)
	assert.InDelta(t, 0, Sin(Pi), standardTol)
	assert.Equal(t, float32(3), Sqrt(9))
	assert.Equal(t, float32(2), Max(2, 1))
	assert.Equal(t, float32(1), Min(2, 1))
	assert.Greater(t, Infinity, float32(1e38))
	assert.Equal(t, float32(33.33), Truncate(100.0/3, 4))
}
